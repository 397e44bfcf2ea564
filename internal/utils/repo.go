package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// ParseRepoInput resolves a user-supplied repository reference into owner
// and name. It accepts the "owner/name" shorthand or a full GitHub URL
// such as "https://github.com/owner/name"; a trailing ".git" is stripped.
func ParseRepoInput(input string) (owner, name string, err error) {
	ref := strings.TrimSpace(input)
	if ref == "" {
		return "", "", fmt.Errorf("empty repository reference")
	}

	if strings.Contains(ref, "://") {
		u, err := url.Parse(ref)
		if err != nil {
			return "", "", fmt.Errorf("invalid repository URL: %w", err)
		}
		ref = u.Path
	}

	parts := strings.Split(strings.Trim(ref, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository reference %q: want owner/name", input)
	}

	return parts[0], strings.TrimSuffix(parts[1], ".git"), nil
}

// IsValidRepoInput reports whether input parses as a repository reference.
func IsValidRepoInput(input string) bool {
	_, _, err := ParseRepoInput(input)
	return err == nil
}
