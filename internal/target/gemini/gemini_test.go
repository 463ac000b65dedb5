package gemini

import (
	"slices"
	"testing"

	"github.com/thoreinstein/mcpadd/internal/spec"
	"github.com/thoreinstein/mcpadd/internal/target"
)

func TestPlan_LocalPositionals(t *testing.T) {
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

	if artifact.Program != "gemini" {
		t.Errorf("Program = %q, want gemini", artifact.Program)
	}
	want := []string{"mcp", "add", "tool", "npx", "-y", "@foo/tool"}
	if !slices.Equal(artifact.Args, want) {
		t.Errorf("argv = %v, want %v", artifact.Args, want)
	}
}

func TestPlan_ScopeFlagOmittedForUser(t *testing.T) {
	a := New(nil)

	user := &target.Request{
		Spec:  &spec.ServerSpec{Kind: spec.KindLocal, Command: "node"},
		Name:  "srv",
		Scope: "user",
	}
	artifact, err := a.Plan(user)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	if slices.Contains(artifact.Args, "--scope") {
		t.Errorf("user scope argv carries --scope: %v", artifact.Args)
	}

	project := &target.Request{
		Spec:  &spec.ServerSpec{Kind: spec.KindLocal, Command: "node"},
		Name:  "srv",
		Scope: "project",
	}
	artifact, err = a.Plan(project)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	want := []string{"mcp", "add", "--scope", "project", "srv", "node"}
	if !slices.Equal(artifact.Args, want) {
		t.Errorf("argv = %v, want %v", artifact.Args, want)
	}
}

func TestPlan_EnvFlagsSorted(t *testing.T) {
	a := New(nil)
	req := &target.Request{
		Spec: &spec.ServerSpec{
			Kind:    spec.KindLocal,
			Command: "node",
			Args:    []string{"server.js"},
			Env:     map[string]string{"ZED": "2", "API_KEY": "secret", "MODE": "prod"},
		},
		Name:  "srv",
		Scope: "user",
	}

	artifact, err := a.Plan(req)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	want := []string{
		"mcp", "add",
		"-e", "API_KEY=secret",
		"-e", "MODE=prod",
		"-e", "ZED=2",
		"srv", "node", "server.js",
	}
	if !slices.Equal(artifact.Args, want) {
		t.Errorf("argv = %v, want %v", artifact.Args, want)
	}
}

func TestPlan_Remote(t *testing.T) {
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
	if !slices.Equal(artifact.Args, want) {
		t.Errorf("argv = %v, want %v", artifact.Args, want)
	}
}

func TestPlan_MetacharactersStaySingleElements(t *testing.T) {
	a := New(nil)
	req := &target.Request{
		Spec: &spec.ServerSpec{
			Kind:    spec.KindLocal,
			Command: "sh",
			Args:    []string{"-c", "echo $HOME && rm -rf /"},
		},
		Name:  "hostile",
		Scope: "user",
	}

	artifact, err := a.Plan(req)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	// The whole hostile string is one element, never re-split.
	if artifact.Args[len(artifact.Args)-1] != "echo $HOME && rm -rf /" {
		t.Errorf("metacharacter arg altered: %v", artifact.Args)
	}
}

func TestAdapterSurface(t *testing.T) {
	a := New(nil)

	if a.Name() != "gemini" {
		t.Errorf("Name = %q", a.Name())
	}
	if a.DefaultRemoteTransport() != "http" {
		t.Errorf("DefaultRemoteTransport = %q, want http", a.DefaultRemoteTransport())
	}

	scopes := a.AllowedScopes()
	if slices.Contains(scopes, "local") {
		t.Errorf("gemini must not offer a local scope: %v", scopes)
	}
	if !slices.Contains(scopes, "user") || !slices.Contains(scopes, "project") {
		t.Errorf("AllowedScopes = %v", scopes)
	}
}

func TestConfigPath(t *testing.T) {
	a := New(nil)

	p, err := a.ConfigPath("project", "/work/proj")
	if err != nil {
		t.Fatalf("ConfigPath failed: %v", err)
	}
	if p != "/work/proj/.gemini/settings.json" {
		t.Errorf("project path = %q", p)
	}

	if _, err := a.ConfigPath("local", "/work/proj"); err == nil {
		t.Error("local scope resolved for gemini, want error")
	}
}
