package summary

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/ytlength/ytlength/internal/domain/playlist"
)

// SelectRange validates an optional 1-based inclusive [from, to] range
// against total and returns the 0-based half-open slice bounds plus the
// applied range. Empty fromRaw/toRaw default to the full range. An invalid
// range is an error only when the caller supplied at least one bound;
// otherwise it falls back to the full range.
func SelectRange(total int, fromRaw, toRaw string) (int, int, *playlist.Range, error) {
	fromRaw = strings.TrimSpace(fromRaw)
	toRaw = strings.TrimSpace(toRaw)

	from, fromOK := 1, true
	if fromRaw != "" {
		from, fromOK = parseBound(fromRaw)
	}
	to, toOK := total, true
	if toRaw != "" {
		to, toOK = parseBound(toRaw)
	}

	valid := fromOK && toOK &&
		from >= 1 && to >= 1 &&
		from <= total && to <= total &&
		from <= to

	if !valid {
		if fromRaw != "" || toRaw != "" {
			return 0, 0, nil, errors.Wrapf(ErrInvalidRange, "playlist has %d videos", total)
		}
		// Nothing was supplied; the total itself made the default
		// invalid. Fall back to the full range.
		return 0, total, &playlist.Range{From: 1, To: total}, nil
	}

	return from - 1, to, &playlist.Range{From: from, To: to}, nil
}

func parseBound(raw string) (int, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
