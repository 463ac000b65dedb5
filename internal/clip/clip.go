// Package clip wraps system clipboard access for input and output of
// server configurations and generated commands.
package clip

import (
	"strings"

	"github.com/atotto/clipboard"

	"github.com/thoreinstein/mcpadd/internal/errors"
)

// Read returns the trimmed clipboard contents.
// Fails when the clipboard is unavailable or empty.
func Read() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", errors.Wrap(err, "reading clipboard")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New("clipboard is empty")
	}
	return text, nil
}

// Write places text on the system clipboard.
func Write(text string) error {
	return errors.Wrap(clipboard.WriteAll(text), "writing clipboard")
}
