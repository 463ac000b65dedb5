package spec

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ParseError indicates the raw input could not be parsed as a server
// configuration. When the fragment-wrapping fallback was attempted, both
// underlying parse failures are retained.
type ParseError struct {
	// Direct is the error from parsing the input as-is.
	Direct error

	// Wrapped is the error from the brace-wrapped retry, nil if not attempted.
	Wrapped error
}

func (e *ParseError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("invalid server JSON: %v (also failed wrapped in braces: %v)", e.Direct, e.Wrapped)
	}
	return fmt.Sprintf("invalid server JSON: %v", e.Direct)
}

func (e *ParseError) Unwrap() error {
	return e.Direct
}

// fragmentStart matches text that begins with a quoted-or-bare key followed
// by a colon and an opening brace, i.e. an object fragment missing its outer
// braces: `"name": {` or `name: {`.
var fragmentStart = regexp.MustCompile(`^\s*("?[A-Za-z0-9_.-]+"?)\s*:\s*\{`)

// Normalize parses raw JSON text into a canonical ServerSpec.
//
// The parse proceeds through an ordered list of shapes:
//  1. The text as-is. If that fails and the text looks like a bare object
//     fragment, retry with the text wrapped in braces.
//  2. A wrapper object: a single key whose value is an object, with no
//     command or url at the top level. The key becomes SuggestedName and the
//     inner object is normalized instead.
//  3. A canonical object with either url (remote) or command (local).
//
// fallbackName seeds SuggestedName when the input provides no name of its own.
func Normalize(raw string, fallbackName string) (*ServerSpec, error) {
	obj, err := parseObject(raw)
	if err != nil {
		return nil, err
	}

	suggested := fallbackName

	// Wrapper shape: exactly one key, object value, no command/url at top level.
	if inner, key, ok := unwrap(obj); ok {
		obj = inner
		suggested = key
	}

	var fields jsonSpec
	if err := reparse(obj, &fields); err != nil {
		return nil, &ParseError{Direct: err}
	}
	if fields.Name != "" {
		suggested = fields.Name
	}

	if fields.URL != "" {
		sp := &ServerSpec{
			Kind:          KindRemote,
			URL:           fields.URL,
			Transport:     fields.Transport,
			Description:   fields.Description,
			SuggestedName: suggested,
		}
		if sp.Description == "" {
			sp.Description = "URL-based MCP server: " + sp.URL
		}
		return sp, nil
	}

	if fields.Command == "" {
		return nil, &ParseError{Direct: fmt.Errorf("object has neither %q nor %q", "command", "url")}
	}

	sp := &ServerSpec{
		Kind:          KindLocal,
		Command:       fields.Command,
		Args:          fields.Args,
		Env:           fields.Env,
		WorkingDir:    fields.Cwd,
		Description:   fields.Description,
		SuggestedName: suggested,
	}
	if sp.Args == nil {
		sp.Args = []string{}
	}
	if sp.Env == nil {
		sp.Env = map[string]string{}
	}
	if sp.Description == "" {
		sp.Description = "MCP server from JSON"
	}
	return sp, nil
}

// parseObject decodes raw into a JSON object, applying the fragment-wrapping
// fallback when the text looks like a bare key-value fragment.
func parseObject(raw string) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	direct := json.Unmarshal([]byte(raw), &obj)
	if direct == nil {
		return obj, nil
	}

	if !fragmentStart.MatchString(raw) {
		return nil, &ParseError{Direct: direct}
	}

	wrapped := json.Unmarshal([]byte("{"+strings.TrimSpace(raw)+"}"), &obj)
	if wrapped != nil {
		return nil, &ParseError{Direct: direct, Wrapped: wrapped}
	}
	return obj, nil
}

// unwrap detects the single-key wrapper shape. It returns the inner object
// and the wrapper key when the shape matches.
func unwrap(obj map[string]json.RawMessage) (map[string]json.RawMessage, string, bool) {
	if len(obj) != 1 {
		return nil, "", false
	}
	if _, ok := obj["command"]; ok {
		return nil, "", false
	}
	if _, ok := obj["url"]; ok {
		return nil, "", false
	}

	for key, val := range obj {
		var inner map[string]json.RawMessage
		if err := json.Unmarshal(val, &inner); err != nil {
			return nil, "", false
		}
		return inner, key, true
	}
	return nil, "", false
}

// reparse decodes an already-split object into the typed field set.
func reparse(obj map[string]json.RawMessage, into *jsonSpec) error {
	data, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, into)
}
