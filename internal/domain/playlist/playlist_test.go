package playlist

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytlength/ytlength/internal/domain/video"
)

func TestSummaryDurations(t *testing.T) {
	s := &Summary{
		Videos: []video.Video{
			{ID: "a", Duration: 120, Position: 1},
			{ID: "b", Duration: 60, Position: 2},
			{ID: "c", Duration: 30, Position: 3},
		},
	}

	assert.Equal(t, int64(210), s.TotalDuration())
	assert.InDelta(t, 70.0, s.AverageDuration(), 0.0001)
}

func TestSummaryDurationsEmpty(t *testing.T) {
	s := &Summary{Videos: []video.Video{}}

	assert.Equal(t, int64(0), s.TotalDuration())
	assert.Equal(t, 0.0, s.AverageDuration())
	assert.Nil(t, s.FirstVideo())
	assert.Nil(t, s.LastVideo())
}

func TestSummaryFirstLast(t *testing.T) {
	s := &Summary{
		Videos: []video.Video{
			{ID: "first", Position: 1},
			{ID: "middle", Position: 2},
			{ID: "last", Position: 3},
		},
	}

	require.NotNil(t, s.FirstVideo())
	require.NotNil(t, s.LastVideo())
	assert.Equal(t, "first", s.FirstVideo().ID)
	assert.Equal(t, "last", s.LastVideo().ID)
}

func TestRangeWidth(t *testing.T) {
	assert.Equal(t, 11, (&Range{From: 100, To: 110}).Width())
	assert.Equal(t, 1, (&Range{From: 3, To: 3}).Width())
}

func TestWatchURL(t *testing.T) {
	v := &video.Video{ID: "dQw4w9WgXcQ"}
	url := v.WatchURL("PLtest", 42)
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PLtest&index=42", url)
}

func TestSummaryJSONShape(t *testing.T) {
	s := &Summary{
		ID:               "PLabc",
		Title:            "Mix",
		ChannelTitle:     "Channel",
		VideoCount:       2,
		ActualVideoCount: 2,
		Videos: []video.Video{
			{ID: "a", Title: "A", Duration: 10, Position: 1, Thumbnail: "http://t/a.jpg"},
			{ID: "b", Title: "B", Duration: 20, Position: 2},
		},
		Range: &Range{From: 1, To: 2},
	}

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "PLabc", decoded["id"])
	assert.Equal(t, "Channel", decoded["channelTitle"])
	assert.Equal(t, float64(2), decoded["videoCount"])
	assert.Contains(t, decoded, "range")

	videos := decoded["videos"].([]any)
	require.Len(t, videos, 2)
	first := videos[0].(map[string]any)
	assert.Equal(t, float64(1), first["position"])
	assert.Contains(t, first, "thumbnail")
	second := videos[1].(map[string]any)
	assert.NotContains(t, second, "thumbnail")
}

func TestSummaryJSONOmitsAbsentRange(t *testing.T) {
	s := &Summary{ID: "PLempty", Videos: []video.Video{}}

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.NotContains(t, decoded, "range")
}
