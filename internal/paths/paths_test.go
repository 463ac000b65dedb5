package paths

import (
	"path/filepath"
	"slices"
	"testing"
)

func TestAllowedScopes(t *testing.T) {
	tests := []struct {
		target string
		want   []string
	}{
		{TargetClaude, []string{ScopeUser, ScopeLocal, ScopeProject}},
		{TargetGemini, []string{ScopeUser, ScopeProject}},
		{TargetOpenCode, []string{ScopeUser, ScopeProject}},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			got := AllowedScopes(tt.target)
			if !slices.Equal(got, tt.want) {
				t.Errorf("AllowedScopes(%s) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}

	if AllowedScopes("nonsense") != nil {
		t.Error("AllowedScopes for unknown target is non-nil")
	}
}

func TestValidTarget(t *testing.T) {
	for _, target := range Targets() {
		if !ValidTarget(target) {
			t.Errorf("ValidTarget(%s) = false", target)
		}
	}
	if ValidTarget("cursor") {
		t.Error("ValidTarget(cursor) = true")
	}
}

func TestConfigPath_ProjectAnchored(t *testing.T) {
	root := "/work/proj"

	tests := []struct {
		target string
		scope  string
		want   string
	}{
		{TargetClaude, ScopeLocal, filepath.Join(root, ".claude", "settings.local.json")},
		{TargetClaude, ScopeProject, filepath.Join(root, ".mcp.json")},
		{TargetGemini, ScopeProject, filepath.Join(root, ".gemini", "settings.json")},
		{TargetOpenCode, ScopeProject, filepath.Join(root, "opencode.json")},
	}

	for _, tt := range tests {
		t.Run(tt.target+"/"+tt.scope, func(t *testing.T) {
			got, err := ConfigPath(tt.target, tt.scope, root)
			if err != nil {
				t.Fatalf("ConfigPath failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("ConfigPath = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigPath_UserScope(t *testing.T) {
	home, err := ResolveHome()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	got, err := ConfigPath(TargetClaude, ScopeUser, "")
	if err != nil {
		t.Fatalf("ConfigPath failed: %v", err)
	}
	if got != filepath.Join(home, ".claude.json") {
		t.Errorf("claude user path = %q", got)
	}

	got, err = ConfigPath(TargetGemini, ScopeUser, "")
	if err != nil {
		t.Fatalf("ConfigPath failed: %v", err)
	}
	if got != filepath.Join(home, ".gemini", "settings.json") {
		t.Errorf("gemini user path = %q", got)
	}

	got, err = ConfigPath(TargetOpenCode, ScopeUser, "")
	if err != nil {
		t.Fatalf("ConfigPath failed: %v", err)
	}
	if got != filepath.Join(ConfigHome(), "opencode", "opencode.json") {
		t.Errorf("opencode user path = %q", got)
	}
}

func TestConfigPath_Errors(t *testing.T) {
	if _, err := ConfigPath("cursor", ScopeUser, ""); err == nil {
		t.Error("unknown target resolved")
	}
	if _, err := ConfigPath(TargetGemini, ScopeLocal, "/root"); err == nil {
		t.Error("gemini local scope resolved")
	}
	if _, err := ConfigPath(TargetOpenCode, ScopeLocal, "/root"); err == nil {
		t.Error("opencode local scope resolved")
	}
}

func TestServerContainerKey(t *testing.T) {
	if ServerContainerKey(TargetOpenCode) != "mcp" {
		t.Error("opencode container key")
	}
	if ServerContainerKey(TargetClaude) != "mcpServers" {
		t.Error("claude container key")
	}
	if ServerContainerKey(TargetGemini) != "mcpServers" {
		t.Error("gemini container key")
	}
}
