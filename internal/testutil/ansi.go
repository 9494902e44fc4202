// Package testutil holds helpers shared by the gausscalc test suites.
package testutil

import "regexp"

// csiRegex matches the CSI escape sequences the ui themes emit (ESC [ ...
// terminated by a letter), which is the only ANSI form gausscalc produces.
var csiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripANSI returns s with all color escape sequences removed, so tests can
// assert on rendered text regardless of the active theme.
func StripANSI(s string) string {
	return csiRegex.ReplaceAllString(s, "")
}
