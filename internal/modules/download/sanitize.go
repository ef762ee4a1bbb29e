package download

import "strings"

const maxFilenameLen = 50

// SanitizeFilename turns a display name into a safe archive filename stem:
// lowercased, runs of non-alphanumerics collapsed to single hyphens, edge
// hyphens trimmed, capped at 50 characters.
func SanitizeFilename(name string) string {
	var b strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			hyphen = false
		default:
			if !hyphen && b.Len() > 0 {
				b.WriteByte('-')
				hyphen = true
			}
		}
	}

	out := strings.TrimRight(b.String(), "-")
	if len(out) > maxFilenameLen {
		out = strings.TrimRight(out[:maxFilenameLen], "-")
	}
	return out
}
