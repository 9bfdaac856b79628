package summary

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytlength/ytlength/internal/domain/playlist"
)

func TestSelectRange(t *testing.T) {
	tests := []struct {
		name          string
		total         int
		fromRaw       string
		toRaw         string
		expectedStart int
		expectedEnd   int
		expectedRange *playlist.Range
		wantErr       bool
	}{
		{
			name:          "Defaults to full range",
			total:         10,
			expectedStart: 0,
			expectedEnd:   10,
			expectedRange: &playlist.Range{From: 1, To: 10},
		},
		{
			name:          "Explicit sub-range",
			total:         10,
			fromRaw:       "3",
			toRaw:         "5",
			expectedStart: 2,
			expectedEnd:   5,
			expectedRange: &playlist.Range{From: 3, To: 5},
		},
		{
			name:          "From only",
			total:         10,
			fromRaw:       "7",
			expectedStart: 6,
			expectedEnd:   10,
			expectedRange: &playlist.Range{From: 7, To: 10},
		},
		{
			name:          "To only",
			total:         10,
			toRaw:         "4",
			expectedStart: 0,
			expectedEnd:   4,
			expectedRange: &playlist.Range{From: 1, To: 4},
		},
		{
			name:          "Single item range",
			total:         10,
			fromRaw:       "5",
			toRaw:         "5",
			expectedStart: 4,
			expectedEnd:   5,
			expectedRange: &playlist.Range{From: 5, To: 5},
		},
		{
			name:    "Inverted bounds",
			total:   10,
			fromRaw: "8",
			toRaw:   "3",
			wantErr: true,
		},
		{
			name:    "To beyond total",
			total:   10,
			fromRaw: "1",
			toRaw:   "20",
			wantErr: true,
		},
		{
			name:    "From below one",
			total:   10,
			fromRaw: "0",
			toRaw:   "5",
			wantErr: true,
		},
		{
			name:    "Non-numeric bound",
			total:   10,
			fromRaw: "abc",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, rng, err := SelectRange(tt.total, tt.fromRaw, tt.toRaw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidRange))
				assert.Contains(t, err.Error(), "10", "message carries the total count")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStart, start)
			assert.Equal(t, tt.expectedEnd, end)
			assert.Equal(t, tt.expectedRange, rng)
		})
	}
}

func TestSelectRangeUnsuppliedFallsBack(t *testing.T) {
	// Neither bound supplied: even when the computed default is invalid
	// the selector falls back to the full range instead of failing.
	start, end, rng, err := SelectRange(0, "", "")
	require.NoError(t, err)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
	assert.Equal(t, &playlist.Range{From: 1, To: 0}, rng)
}
