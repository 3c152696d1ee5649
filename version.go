// Package amanita is a modal, vi-style text editor.
//
// The document model lives in package buffer, the modal command layer in
// package editor and persistence in package storage. cmd/amanita hosts them
// in a terminal.
package amanita

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the release in SemVer format, without a leading v.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// UserAgent returns the name and version the binary reports with -version
// and writes to its log.
func UserAgent() string {
	return "amanita/" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
