package summary

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestResolvePlaylistID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "Bare 34-char ID",
			input:    "PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf",
			expected: "PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf",
		},
		{
			name:     "Watch URL with list param",
			input:    "https://www.youtube.com/watch?v=abc123&list=PLxyz",
			expected: "PLxyz",
		},
		{
			name:     "Playlist URL",
			input:    "https://youtube.com/playlist?list=XYZ",
			expected: "XYZ",
		},
		{
			name:     "Embed videoseries URL",
			input:    "https://www.youtube.com/embed/videoseries?list=PLembedded",
			expected: "PLembedded",
		},
		{
			name:     "List param followed by more params",
			input:    "https://www.youtube.com/watch?list=PLfirst&index=4",
			expected: "PLfirst",
		},
		{
			name:     "Surrounding whitespace",
			input:    "  https://youtube.com/playlist?list=PLtrimmed  ",
			expected: "PLtrimmed",
		},
		{
			name:    "Not a URL",
			input:   "not a url",
			wantErr: true,
		},
		{
			name:    "Empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "Short bare token",
			input:   "PLshort",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ResolvePlaylistID(tt.input)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidPlaylistReference))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}
