package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// LocalState returns a global state document holding an info_cache entry
// for every given token. The big integer mirrors what the browser writes.
func LocalState(tokens ...string) string {
	entries := make([]string, 0, len(tokens))
	for _, token := range tokens {
		entries = append(entries, `"`+token+`":{"active_time":1712345678.123,"avatar_icon":"chrome://theme/IDR_PROFILE_AVATAR_26","is_using_default_name":true,"name":"Profile 1"}`)
	}
	return `{"browser":{"enabled_labs_experiments":[]},` +
		`"profile":{"info_cache":{` + strings.Join(entries, ",") + `},"last_used":"Default"},` +
		`"user_experience_metrics":{"client_id2":"x","low_entropy_source3":7301,"session_id":13375930211234567890}}`
}

// Preferences is a freshly bootstrapped preferences document
const Preferences = `{
  "browser": {
    "has_seen_welcome_page": false,
    "show_hub_apps_tower": true,
    "window_placement": {"bottom": 1040, "left": 10, "maximized": false, "right": 1290, "top": 10}
  },
  "guided_switch": {"enabled": true, "last_shown": "13375930211234567"},
  "ntp": {"layout_mode": 1, "news_feed_display": "always", "prerender_contents_height": 939},
  "profile": {"name": "Profile 1", "exit_type": "Crashed"}
}`

// PNG returns an encoded w×h image in a single color
func PNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill := color.RGBA{99, 102, 241, 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, fill)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
