// Package summary resolves a playlist reference and reduces its membership
// into a playlist summary via the YouTube Data API.
package summary

import (
	"context"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/ytlength/ytlength/internal/domain/duration"
	"github.com/ytlength/ytlength/internal/domain/playlist"
	"github.com/ytlength/ytlength/internal/domain/video"
	"github.com/ytlength/ytlength/internal/infra/youtube"
)

// Provider is the subset of the YouTube client the pipeline consumes.
type Provider interface {
	GetPlaylist(ctx context.Context, playlistID string) (*youtube.Playlist, error)
	ListPlaylistItems(ctx context.Context, playlistID, pageToken string) (*youtube.ItemsPage, error)
	GetVideoDetails(ctx context.Context, videoIDs []string) ([]youtube.Video, error)
}

// Request describes one summarization request. FromVideoNum and ToVideoNum
// are raw user input (1-based inclusive); empty means unset.
type Request struct {
	PlaylistURL  string
	FromVideoNum string
	ToVideoNum   string
}

// Summarizer computes playlist summaries. It holds no per-request state;
// concurrent calls are independent.
type Summarizer struct {
	provider Provider
}

// New creates a new Summarizer.
func New(provider Provider) *Summarizer {
	return &Summarizer{provider: provider}
}

// Summarize runs the full pipeline: resolve the playlist reference, fetch
// metadata, enumerate membership, apply the requested range, fetch per-video
// details in batches, and assemble the ordered summary. It either returns a
// complete summary or the first error; there are no partial results.
func (s *Summarizer) Summarize(ctx context.Context, req Request) (*playlist.Summary, error) {
	playlistID, err := ResolvePlaylistID(req.PlaylistURL)
	if err != nil {
		return nil, err
	}

	info, err := s.provider.GetPlaylist(ctx, playlistID)
	if err != nil {
		if errors.Is(err, youtube.ErrNotFound) {
			return nil, errors.Mark(err, ErrPlaylistNotFound)
		}
		return nil, fetchFailed("playlist info", err)
	}

	videoIDs, err := s.enumerateMembers(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	if len(videoIDs) == 0 {
		if info.ItemCount == 0 {
			// An empty playlist is a success, not an error.
			return &playlist.Summary{
				ID:           playlistID,
				Title:        info.Title,
				ChannelTitle: info.ChannelTitle,
				Videos:       []video.Video{},
			}, nil
		}
		return nil, errors.Wrapf(ErrInconsistentPlaylistState, "playlist reports %d items", info.ItemCount)
	}

	totalCount := len(videoIDs)
	start, end, rng, err := SelectRange(totalCount, req.FromVideoNum, req.ToVideoNum)
	if err != nil {
		return nil, err
	}

	selected := videoIDs[start:end]
	rangeSupplied := strings.TrimSpace(req.FromVideoNum) != "" || strings.TrimSpace(req.ToVideoNum) != ""
	if len(selected) == 0 && rangeSupplied {
		return nil, ErrEmptyRangeSelection
	}

	videos, err := s.fetchDetails(ctx, selected)
	if err != nil {
		return nil, err
	}

	// Batches may come back in any order; the recorded positions restore
	// the original sub-range order.
	sort.Slice(videos, func(i, j int) bool { return videos[i].Position < videos[j].Position })

	if len(videos) < len(selected) {
		zlog.Debug().Msgf("playlist %s: resolved %d of %d selected videos", playlistID, len(videos), len(selected))
	}

	return &playlist.Summary{
		ID:               playlistID,
		Title:            info.Title,
		ChannelTitle:     info.ChannelTitle,
		VideoCount:       totalCount,
		ActualVideoCount: len(videos),
		Videos:           videos,
		Range:            rng,
	}, nil
}

// enumerateMembers walks every playlistItems page and accumulates member
// video ids in playlist order.
func (s *Summarizer) enumerateMembers(ctx context.Context, playlistID string) ([]string, error) {
	var videoIDs []string
	pageToken := ""

	for {
		page, err := s.provider.ListPlaylistItems(ctx, playlistID, pageToken)
		if err != nil {
			return nil, fetchFailed("playlist videos", err)
		}
		videoIDs = append(videoIDs, page.VideoIDs...)
		if page.NextPageToken == "" {
			return videoIDs, nil
		}
		pageToken = page.NextPageToken
	}
}

// fetchDetails fetches per-video details in fixed-size batches. Each result
// carries its 1-based position within selected; ids the API no longer
// recognizes are silently absent.
func (s *Summarizer) fetchDetails(ctx context.Context, selected []string) ([]video.Video, error) {
	positions := make(map[string]int, len(selected))
	for i, id := range selected {
		positions[id] = i + 1
	}

	videos := make([]video.Video, 0, len(selected))
	for i := 0; i < len(selected); i += youtube.MaxBatchSize {
		end := i + youtube.MaxBatchSize
		if end > len(selected) {
			end = len(selected)
		}

		details, err := s.provider.GetVideoDetails(ctx, selected[i:end])
		if err != nil {
			return nil, fetchFailed("video details", err)
		}

		for _, d := range details {
			pos, ok := positions[d.ID]
			if !ok {
				continue
			}
			videos = append(videos, video.Video{
				ID:        d.ID,
				Title:     d.Title,
				Duration:  duration.Decode(d.DurationISO),
				Position:  pos,
				Thumbnail: d.Thumbnail,
			})
		}
	}

	return videos, nil
}
