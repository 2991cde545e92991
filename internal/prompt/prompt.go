// Package prompt asks the user for input on the terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Reader reads answers from In and writes questions to Out
type Reader struct {
	In  io.Reader
	Out io.Writer
}

// Ask prints question and returns the trimmed answer line. An answer
// cut short by end of input is still returned; no input at all is an error.
func (r Reader) Ask(question string) (string, error) {
	fmt.Fprint(r.Out, question)

	response, err := bufio.NewReader(r.In).ReadString('\n')
	if err != nil && (err != io.EOF || response == "") {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(response), nil
}
