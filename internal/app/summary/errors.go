package summary

import "github.com/cockroachdb/errors"

// Sentinel errors for the summarization pipeline. Callers classify with
// errors.Is; messages carry the request-specific detail.
var (
	// ErrInvalidPlaylistReference means the input matched no accepted
	// playlist ID or URL shape.
	ErrInvalidPlaylistReference = errors.New("invalid YouTube playlist URL or ID")

	// ErrPlaylistNotFound means the API reported zero playlists for the
	// resolved ID. Private, deleted, and nonexistent are indistinguishable.
	ErrPlaylistNotFound = errors.New("playlist not found or is private")

	// ErrInconsistentPlaylistState means metadata claims a nonzero item
	// count but membership enumeration found nothing.
	ErrInconsistentPlaylistState = errors.New("found 0 videos via API, but playlist might not be empty")

	// ErrInvalidRange means an explicitly supplied from/to failed bounds
	// validation.
	ErrInvalidRange = errors.New("invalid video range")

	// ErrEmptyRangeSelection means an explicitly supplied range validated
	// but selected zero videos.
	ErrEmptyRangeSelection = errors.New("no videos found in the specified range")

	// ErrFetchFailed means an API call returned a non-success status.
	ErrFetchFailed = errors.New("fetch failed")
)

// fetchFailed tags an API call error with the pipeline stage it aborted.
func fetchFailed(stage string, err error) error {
	return errors.Mark(errors.Wrapf(err, "failed to fetch %s", stage), ErrFetchFailed)
}
