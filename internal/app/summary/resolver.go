package summary

import (
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

// barePlaylistID matches a canonical playlist ID supplied directly.
var barePlaylistID = regexp.MustCompile(`^[A-Za-z0-9_-]{34}$`)

// URL shapes carrying a playlist ID, tried in order. First match wins;
// the path shapes are mutually exclusive in practice.
var urlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[&?]list=([^&]+)`),
	regexp.MustCompile(`playlist\?list=([^&]+)`),
	regexp.MustCompile(`embed/videoseries\?list=([^&]+)`),
}

// ResolvePlaylistID extracts the canonical playlist ID from a bare ID or
// any of the supported YouTube URL shapes.
func ResolvePlaylistID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)

	if barePlaylistID.MatchString(raw) {
		return raw, nil
	}

	for _, pattern := range urlPatterns {
		if match := pattern.FindStringSubmatch(raw); match != nil && match[1] != "" {
			return match[1], nil
		}
	}

	return "", errors.Wrapf(ErrInvalidPlaylistReference, "input %q", raw)
}
