package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	zlog "github.com/rs/zerolog/log"

	"github.com/ytlength/ytlength/internal/app/summary"
)

// flexString accepts either a JSON string or a JSON number, so callers can
// send video numbers in whichever form their client produces.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// playlistRequest is the body of POST /api/playlist.
type playlistRequest struct {
	PlaylistURL  string     `json:"playlistUrl"`
	FromVideoNum flexString `json:"fromVideoNum"`
	ToVideoNum   flexString `json:"toVideoNum"`
}

// summarizePlaylist handles playlist summarization requests.
func (s *Server) summarizePlaylist(c *gin.Context) {
	var req playlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request: %v", err)})
		return
	}

	if req.PlaylistURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Playlist URL is required"})
		return
	}

	sum, err := s.summarizer.Summarize(c.Request.Context(), summary.Request{
		PlaylistURL:  req.PlaylistURL,
		FromVideoNum: string(req.FromVideoNum),
		ToVideoNum:   string(req.ToVideoNum),
	})
	if err != nil {
		status := statusFromError(err)
		if status >= http.StatusInternalServerError {
			zlog.Error().
				Str("request_id", c.GetString("request_id")).
				Msgf("summarization failed: %v", err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sum)
}

// statusFromError maps pipeline error kinds onto HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, summary.ErrInvalidPlaylistReference),
		errors.Is(err, summary.ErrInvalidRange),
		errors.Is(err, summary.ErrEmptyRangeSelection):
		return http.StatusBadRequest
	case errors.Is(err, summary.ErrPlaylistNotFound):
		return http.StatusNotFound
	case errors.Is(err, summary.ErrFetchFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
