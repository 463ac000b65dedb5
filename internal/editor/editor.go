// Package editor launches the user's preferred text editor, optionally
// positioned at a specific line, and locates server entries inside JSON
// config files so the edit command can jump straight to them.
package editor

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/mcpadd/internal/errors"
)

// Open launches the editor for path.
// Uses $EDITOR, falling back to $VISUAL, then nano, then vi.
func Open(path string) error {
	return OpenAt(path, 0)
}

// OpenAt launches the editor positioned at the given 1-based line when the
// editor supports the +N convention. Line 0 opens without positioning.
func OpenAt(path string, line int) error {
	return OpenAtWith("", path, line)
}

// OpenAtWith is OpenAt with an explicit editor command. An empty editorCmd
// falls back to Detect.
func OpenAtWith(editorCmd, path string, line int) error {
	if editorCmd == "" {
		editorCmd = Detect()
	}

	args := []string{path}
	if line > 0 && supportsLineFlag(editorCmd) {
		args = []string{fmt.Sprintf("+%d", line), path}
	}

	fmt.Printf("Location: %s\n", path)

	cmd := exec.Command(editorCmd, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "running editor")
	}

	return nil
}

// Detect returns the editor command to use based on environment variables
// and available binaries. Fallback chain: $EDITOR, $VISUAL, nano, vi.
func Detect() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}

	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}

	// POSIX standard fallback
	return "vi"
}

// lineFlagEditors are the editor families known to accept +N before the
// file argument.
var lineFlagEditors = []string{"vi", "vim", "nvim", "nano", "emacs", "pico", "micro"}

func supportsLineFlag(editorCmd string) bool {
	// $EDITOR may carry flags; only the command word matters.
	base := filepath.Base(strings.Fields(editorCmd)[0])
	for _, e := range lineFlagEditors {
		if base == e {
			return true
		}
	}
	return false
}

// LocateEntry scans a JSON config file for the line on which the given
// server's entry key appears. Returns the 1-based line number, or 0 when
// the file lacks the entry or cannot be read.
func LocateEntry(path, name string) int {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()

	needle := `"` + name + `"`
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		idx := strings.Index(line, needle)
		if idx < 0 {
			continue
		}
		// Only match the key position: the quoted name followed by a colon.
		rest := strings.TrimLeft(line[idx+len(needle):], " \t")
		if strings.HasPrefix(rest, ":") {
			return lineNo
		}
	}
	return 0
}
