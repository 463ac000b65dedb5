package claude

import (
	"encoding/json"
	"testing"

	"github.com/thoreinstein/mcpadd/internal/spec"
	"github.com/thoreinstein/mcpadd/internal/target"
)

func TestPlan_LocalAddJSON(t *testing.T) {
	a := New(nil)
	req := &target.Request{
		Spec: &spec.ServerSpec{
			Kind:    spec.KindLocal,
			Command: "npx",
			Args:    []string{"-y", "@foo/tool"},
		},
		Name:  "tool",
		Scope: "user",
	}

	artifact, err := a.Plan(req)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	if artifact.Program != "claude" {
		t.Errorf("Program = %q, want claude", artifact.Program)
	}
	if len(artifact.Args) != 6 {
		t.Fatalf("argv length = %d, want 6: %v", len(artifact.Args), artifact.Args)
	}
	if artifact.Args[0] != "mcp" || artifact.Args[1] != "add-json" || artifact.Args[2] != "tool" {
		t.Errorf("argv prefix = %v", artifact.Args[:3])
	}
	if artifact.Args[4] != "-s" || artifact.Args[5] != "user" {
		t.Errorf("scope suffix = %v", artifact.Args[4:])
	}

	// The JSON argument is one argv element holding the full config.
	var payload struct {
		Command string            `json:"command"`
		Args    []string          `json:"args"`
		Env     map[string]string `json:"env"`
	}
	if err := json.Unmarshal([]byte(artifact.Args[3]), &payload); err != nil {
		t.Fatalf("JSON argument is not valid JSON: %v", err)
	}
	if payload.Command != "npx" {
		t.Errorf("payload command = %q", payload.Command)
	}
	if len(payload.Args) != 2 {
		t.Errorf("payload args = %v", payload.Args)
	}
}

func TestPlan_LocalArgsNeverNull(t *testing.T) {
	a := New(nil)
	req := &target.Request{
		Spec:  &spec.ServerSpec{Kind: spec.KindLocal, Command: "node"},
		Name:  "srv",
		Scope: "project",
	}

	artifact, err := a.Plan(req)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal([]byte(artifact.Args[3]), &payload); err != nil {
		t.Fatalf("bad JSON argument: %v", err)
	}
	if string(payload["args"]) != "[]" {
		t.Errorf("args field = %s, want []", payload["args"])
	}
}

func TestPlan_RemoteTransportDialect(t *testing.T) {
	a := New(nil)
	req := &target.Request{
		Spec: &spec.ServerSpec{
			Kind:      spec.KindRemote,
			URL:       "https://gitmcp.io/docs",
			Transport: "http",
		},
		Name:  "gitmcp",
		Scope: "user",
	}

	artifact, err := a.Plan(req)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	want := []string{"mcp", "add", "--transport", "http", "gitmcp", "https://gitmcp.io/docs"}
	if len(artifact.Args) != len(want) {
		t.Fatalf("argv = %v, want %v", artifact.Args, want)
	}
	for i := range want {
		if artifact.Args[i] != want[i] {
			t.Errorf("argv[%d] = %q, want %q", i, artifact.Args[i], want[i])
		}
	}
}

func TestPlan_MetacharactersStaySingleElements(t *testing.T) {
	// Hostile values never split or escape: each stays one argv element.
	a := New(nil)
	req := &target.Request{
		Spec: &spec.ServerSpec{
			Kind:    spec.KindLocal,
			Command: "sh",
			Args:    []string{"-c", "echo $(whoami); rm -rf /"},
			Env:     map[string]string{"X": "a b'c\"d"},
		},
		Name:  "hostile",
		Scope: "user",
	}

	artifact, err := a.Plan(req)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	var payload struct {
		Args []string          `json:"args"`
		Env  map[string]string `json:"env"`
	}
	if err := json.Unmarshal([]byte(artifact.Args[3]), &payload); err != nil {
		t.Fatalf("bad JSON argument: %v", err)
	}
	if payload.Args[1] != "echo $(whoami); rm -rf /" {
		t.Errorf("metacharacter arg altered: %q", payload.Args[1])
	}
	if payload.Env["X"] != "a b'c\"d" {
		t.Errorf("env value altered: %q", payload.Env["X"])
	}
}

func TestAdapterSurface(t *testing.T) {
	a := New(nil)

	if a.Name() != "claude" {
		t.Errorf("Name = %q", a.Name())
	}
	if a.DefaultRemoteTransport() != "sse" {
		t.Errorf("DefaultRemoteTransport = %q, want sse", a.DefaultRemoteTransport())
	}

	scopes := a.AllowedScopes()
	if len(scopes) != 3 {
		t.Errorf("AllowedScopes = %v, want user/local/project", scopes)
	}
}

func TestConfigPath(t *testing.T) {
	a := New(nil)

	p, err := a.ConfigPath("project", "/work/proj")
	if err != nil {
		t.Fatalf("ConfigPath failed: %v", err)
	}
	if p != "/work/proj/.mcp.json" {
		t.Errorf("project path = %q", p)
	}

	p, err = a.ConfigPath("local", "/work/proj")
	if err != nil {
		t.Fatalf("ConfigPath failed: %v", err)
	}
	if p != "/work/proj/.claude/settings.local.json" {
		t.Errorf("local path = %q", p)
	}
}
