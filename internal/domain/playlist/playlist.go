// Package playlist provides the playlist summary result entity.
package playlist

import "github.com/ytlength/ytlength/internal/domain/video"

// Range is a 1-based inclusive sub-range of playlist positions.
type Range struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Width returns the number of positions the range covers.
func (r *Range) Width() int {
	return r.To - r.From + 1
}

// Summary is the aggregate result for one playlist request. It is built
// fresh per request and never mutated afterwards.
type Summary struct {
	ID           string `json:"id"`           // YouTube playlist ID
	Title        string `json:"title"`        // Playlist title
	ChannelTitle string `json:"channelTitle"` // Owning channel title

	// VideoCount is the number of members enumerated from the playlist,
	// before any range filtering.
	VideoCount int `json:"videoCount"`

	// ActualVideoCount is the number of videos whose details resolved
	// within the applied range. Deleted or private members make it fall
	// short of the range width.
	ActualVideoCount int `json:"actualVideoCount"`

	// Videos is ordered by original playlist position ascending.
	Videos []video.Video `json:"videos"`

	// Range is the applied sub-range. Nil only for an empty playlist.
	Range *Range `json:"range,omitempty"`
}

// TotalDuration returns the summed duration of the selected videos in seconds.
func (s *Summary) TotalDuration() int64 {
	var total int64
	for _, v := range s.Videos {
		total += v.Duration
	}
	return total
}

// AverageDuration returns the mean video duration in seconds, 0 when empty.
func (s *Summary) AverageDuration() float64 {
	if len(s.Videos) == 0 {
		return 0
	}
	return float64(s.TotalDuration()) / float64(len(s.Videos))
}

// FirstVideo returns the first video of the selection, nil when empty.
func (s *Summary) FirstVideo() *video.Video {
	if len(s.Videos) == 0 {
		return nil
	}
	return &s.Videos[0]
}

// LastVideo returns the last video of the selection, nil when empty.
func (s *Summary) LastVideo() *video.Video {
	if len(s.Videos) == 0 {
		return nil
	}
	return &s.Videos[len(s.Videos)-1]
}
