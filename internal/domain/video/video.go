// Package video provides the Video result entity.
package video

import "fmt"

// Video represents one resolved video within a playlist selection.
// Contains only information retrieved from the YouTube API.
type Video struct {
	ID        string `json:"id"`                  // YouTube video ID
	Title     string `json:"title"`               // Video title
	Duration  int64  `json:"duration"`            // Length in seconds
	Position  int    `json:"position"`            // 1-based position within the selection
	Thumbnail string `json:"thumbnail,omitempty"` // Thumbnail URL, may be empty
}

// WatchURL returns the YouTube watch link for this video inside the given
// playlist. index is the video's 1-based position in the full playlist,
// not in the selection.
func (v *Video) WatchURL(playlistID string, index int) string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s&list=%s&index=%d", v.ID, playlistID, index)
}
