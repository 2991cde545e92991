package download

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/cavaliergopher/grab/v3"
)

// Client downloads files over HTTP(S)
type Client struct {
	grab *grab.Client
}

// NewClient creates a download client
func NewClient() *Client {
	c := grab.NewClient()
	c.UserAgent = "edge-profile"
	return &Client{grab: c}
}

// ValidateURL ensures rawURL is an absolute http or https URL
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return fmt.Errorf("invalid URL %q: scheme must be http or https", rawURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid URL %q: missing host", rawURL)
	}
	return nil
}

// File downloads a file from URL to the target path
func (c *Client) File(ctx context.Context, rawURL, targetPath string) error {
	if err := ValidateURL(rawURL); err != nil {
		return err
	}

	req, err := grab.NewRequest(targetPath, rawURL)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req = req.WithContext(ctx)
	req.NoResume = true // Always overwrite, never resume

	resp := c.grab.Do(req)
	if err := resp.Err(); err != nil {
		return fmt.Errorf("download failed: %w", err)
	}

	return nil
}

// ToTemp downloads a file to a temporary location and returns the path
func (c *Client) ToTemp(ctx context.Context, rawURL, prefix string) (string, error) {
	if err := ValidateURL(rawURL); err != nil {
		return "", err
	}

	tempFile, err := os.CreateTemp("", prefix+"*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()
	if err := tempFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := c.File(ctx, rawURL, tempPath); err != nil {
		_ = os.Remove(tempPath) // Best effort cleanup
		return "", err
	}

	return tempPath, nil
}
