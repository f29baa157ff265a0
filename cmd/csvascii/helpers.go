package main

import "strings"

// sanitizeFilename replaces characters that are unsafe in file paths
// and strips control characters. Sheet names may contain any of them.
func sanitizeFilename(name string) string {
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1 // drop control characters
		}
		return r
	}, name)
	for _, c := range []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"} {
		name = strings.ReplaceAll(name, c, "_")
	}
	if name == "" || name == "." || name == ".." {
		name = "unnamed"
	}
	return name
}
