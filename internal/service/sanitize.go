package service

import (
	"strings"
	"unicode"
)

// SanitizeName turns a remote entry name into a single local path element.
// Path separators, NUL, control characters and characters reserved on common
// filesystems are replaced with '_'. The names "", "." and ".." become "_".
func SanitizeName(name string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\':
			return '_'
		case r == 0 || unicode.IsControl(r):
			return '_'
		case strings.ContainsRune(`:*?"<>|`, r):
			return '_'
		}
		return r
	}, name)

	switch sanitized {
	case "", ".", "..":
		return "_"
	}

	return sanitized
}
