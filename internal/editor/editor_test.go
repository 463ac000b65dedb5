package editor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetect_EnvPrecedence(t *testing.T) {
	t.Setenv("EDITOR", "code --wait")
	t.Setenv("VISUAL", "subl")
	if got := Detect(); got != "code --wait" {
		t.Errorf("Detect = %q, want $EDITOR", got)
	}

	t.Setenv("EDITOR", "")
	if got := Detect(); got != "subl" {
		t.Errorf("Detect = %q, want $VISUAL", got)
	}
}

func TestSupportsLineFlag(t *testing.T) {
	tests := []struct {
		editor string
		want   bool
	}{
		{"vim", true},
		{"nvim", true},
		{"nano", true},
		{"/usr/bin/vim", true},
		{"vim -u NONE", true},
		{"code", false},
		{"subl --wait", false},
	}

	for _, tt := range tests {
		if got := supportsLineFlag(tt.editor); got != tt.want {
			t.Errorf("supportsLineFlag(%q) = %v, want %v", tt.editor, got, tt.want)
		}
	}
}

func TestLocateEntry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{
  "$schema": "https://opencode.ai/config.json",
  "mcp": {
    "github": {
      "type": "local",
      "command": ["npx", "github"]
    },
    "memory": {
      "type": "remote",
      "url": "https://memory.example/mcp"
    }
  }
}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := LocateEntry(path, "github"); got != 4 {
		t.Errorf("LocateEntry(github) = %d, want 4", got)
	}
	if got := LocateEntry(path, "memory"); got != 8 {
		t.Errorf("LocateEntry(memory) = %d, want 8", got)
	}
	if got := LocateEntry(path, "absent"); got != 0 {
		t.Errorf("LocateEntry(absent) = %d, want 0", got)
	}
}

func TestLocateEntry_ValuePositionIgnored(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	// "github" appears first as a value; only the key position counts.
	content := `{
  "note": "github",
  "mcp": {
    "github": {"type": "local"}
  }
}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := LocateEntry(path, "github"); got != 4 {
		t.Errorf("LocateEntry = %d, want 4", got)
	}
}

func TestLocateEntry_MissingFile(t *testing.T) {
	if got := LocateEntry(filepath.Join(t.TempDir(), "absent.json"), "x"); got != 0 {
		t.Errorf("LocateEntry = %d, want 0", got)
	}
}
