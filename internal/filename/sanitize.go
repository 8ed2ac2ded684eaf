// Package filename derives safe file names from feed titles.
//
// Channel titles come straight out of third-party feeds, so anything
// can be in them. The sanitizer is deliberately conservative: the
// result must be usable on Windows, macOS and Linux alike.
package filename

import (
	"regexp"
	"strings"
)

// Windows refuses these device names regardless of extension.
var reservedWindows = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

var (
	illegalChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]+`)
	runsOfScore  = regexp.MustCompile(`[_\s]*_[_\s]*`)
)

const maxNameLen = 128

// FromTitle turns a feed title into a file name usable as the default
// output name, without extension. Empty or fully stripped titles come
// back as "feed".
func FromTitle(title string) string {
	name := illegalChars.ReplaceAllString(title, "_")
	name = runsOfScore.ReplaceAllString(name, "_")
	name = strings.Trim(name, " ._")

	if reservedWindows[strings.ToUpper(name)] {
		name = "_" + name
	}
	if name == "" {
		return "feed"
	}
	if len(name) > maxNameLen {
		name = strings.Trim(name[:maxNameLen], " ._")
	}
	return name
}
