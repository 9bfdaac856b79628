// Package youtube provides a client for the YouTube Data API v3.
package youtube

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"
)

const (
	defaultBaseURL = "https://www.googleapis.com/youtube/v3"

	// PageSize is the playlistItems page size requested on every call.
	PageSize = 50

	// MaxBatchSize is the maximum number of ids one videos call accepts.
	MaxBatchSize = 50
)

// ErrNotFound is returned when the API reports no playlist for an ID.
// A private, deleted, or nonexistent playlist all look the same here.
var ErrNotFound = errors.New("playlist not found or is private")

// Client is a YouTube Data API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Config represents YouTube client configuration.
type Config struct {
	APIKey string
}

// Playlist represents playlist metadata from the playlists endpoint.
type Playlist struct {
	ID           string
	Title        string
	ChannelTitle string
	ItemCount    int64
}

// ItemsPage is one page of playlist membership.
type ItemsPage struct {
	VideoIDs      []string
	NextPageToken string // empty on the final page
}

// Video represents per-video details from the videos endpoint.
type Video struct {
	ID          string
	Title       string
	DurationISO string // ISO-8601, e.g. "PT4M13S"
	Thumbnail   string
}

// apiErrorResponse is the standard Data API error body.
type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type playlistsResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
		} `json:"snippet"`
		ContentDetails struct {
			ItemCount int64 `json:"itemCount"`
		} `json:"contentDetails"`
	} `json:"items"`
}

type playlistItemsResponse struct {
	Items []struct {
		ContentDetails struct {
			VideoID string `json:"videoId"`
		} `json:"contentDetails"`
	} `json:"items"`
	NextPageToken string `json:"nextPageToken"`
}

type thumbnailInfo struct {
	URL string `json:"url"`
}

type videosResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title      string `json:"title"`
			Thumbnails struct {
				Medium  *thumbnailInfo `json:"medium"`
				Default *thumbnailInfo `json:"default"`
			} `json:"thumbnails"`
		} `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}

// New creates a new YouTube Data API client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("YouTube API key is required")
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// GetPlaylist retrieves metadata for a single playlist.
// Returns ErrNotFound when the API reports zero matching playlists.
// Reference: https://developers.google.com/youtube/v3/docs/playlists/list
func (c *Client) GetPlaylist(ctx context.Context, playlistID string) (*Playlist, error) {
	if playlistID == "" {
		return nil, errors.New("playlist ID is required")
	}

	params := url.Values{}
	params.Set("part", "snippet,contentDetails")
	params.Set("id", playlistID)
	params.Set("key", c.apiKey)

	var response playlistsResponse
	if err := c.get(ctx, "/playlists", params, &response); err != nil {
		return nil, err
	}

	if len(response.Items) == 0 {
		return nil, errors.Wrapf(ErrNotFound, "playlist %s", playlistID)
	}

	item := response.Items[0]
	return &Playlist{
		ID:           item.ID,
		Title:        item.Snippet.Title,
		ChannelTitle: item.Snippet.ChannelTitle,
		ItemCount:    item.ContentDetails.ItemCount,
	}, nil
}

// ListPlaylistItems retrieves one page of playlist membership. Pass an empty
// pageToken for the first page; an empty NextPageToken in the result signals
// the final page. Entries without a member video ID are skipped.
// Reference: https://developers.google.com/youtube/v3/docs/playlistItems/list
func (c *Client) ListPlaylistItems(ctx context.Context, playlistID, pageToken string) (*ItemsPage, error) {
	if playlistID == "" {
		return nil, errors.New("playlist ID is required")
	}

	params := url.Values{}
	params.Set("part", "contentDetails")
	params.Set("playlistId", playlistID)
	params.Set("maxResults", strconv.Itoa(PageSize))
	params.Set("pageToken", pageToken)
	params.Set("key", c.apiKey)

	var response playlistItemsResponse
	if err := c.get(ctx, "/playlistItems", params, &response); err != nil {
		return nil, err
	}

	page := &ItemsPage{
		VideoIDs:      make([]string, 0, len(response.Items)),
		NextPageToken: response.NextPageToken,
	}
	for _, item := range response.Items {
		if item.ContentDetails.VideoID == "" {
			continue
		}
		page.VideoIDs = append(page.VideoIDs, item.ContentDetails.VideoID)
	}

	return page, nil
}

// GetVideoDetails retrieves title, duration, and thumbnail for up to
// MaxBatchSize video ids in one call. Ids the API no longer recognizes
// (deleted or private videos) are simply absent from the result.
// Reference: https://developers.google.com/youtube/v3/docs/videos/list
func (c *Client) GetVideoDetails(ctx context.Context, videoIDs []string) ([]Video, error) {
	if len(videoIDs) == 0 {
		return []Video{}, nil
	}
	if len(videoIDs) > MaxBatchSize {
		return nil, errors.Newf("at most %d video ids per call, got %d", MaxBatchSize, len(videoIDs))
	}

	params := url.Values{}
	params.Set("part", "snippet,contentDetails")
	params.Set("id", strings.Join(videoIDs, ","))
	params.Set("key", c.apiKey)

	var response videosResponse
	if err := c.get(ctx, "/videos", params, &response); err != nil {
		return nil, err
	}

	videos := make([]Video, 0, len(response.Items))
	for _, item := range response.Items {
		thumbnail := ""
		if item.Snippet.Thumbnails.Medium != nil {
			thumbnail = item.Snippet.Thumbnails.Medium.URL
		} else if item.Snippet.Thumbnails.Default != nil {
			thumbnail = item.Snippet.Thumbnails.Default.URL
		}
		videos = append(videos, Video{
			ID:          item.ID,
			Title:       item.Snippet.Title,
			DurationISO: item.ContentDetails.Duration,
			Thumbnail:   thumbnail,
		})
	}
	if len(videos) < len(videoIDs) {
		zlog.Debug().Msgf("videos call resolved %d of %d requested ids", len(videos), len(videoIDs))
	}

	return videos, nil
}

// get performs one API call and decodes the JSON response into out.
// Non-2xx responses surface the API's own error code and message.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to send request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiError apiErrorResponse
		if err := json.Unmarshal(body, &apiError); err == nil && apiError.Error.Message != "" {
			return errors.Newf("youtube API error %d: %s", resp.StatusCode, apiError.Error.Message)
		}
		return errors.Newf("youtube API error %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "failed to parse response")
	}

	return nil
}
