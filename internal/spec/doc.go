// Package spec defines the canonical server configuration model and the
// normalizer that produces it from heterogeneous JSON input.
//
// Input may be a bare configuration object, a single-key "wrapper" object
// whose key names the server, or an object fragment missing its outer braces.
// Normalization always yields a [ServerSpec] holding exactly one of a local
// launch command or a remote URL.
package spec
