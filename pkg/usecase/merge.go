package usecase

import (
	"strings"

	"github.com/m-mizutani/relnotes/pkg/domain/types"
)

// Merge combines freshly rendered notes with a previous description. Text
// outside the sentinel-marked region of the previous description is kept
// verbatim; the region between the first start sentinel and the last end
// sentinel after it is replaced wholesale. The split is purely textual, so a
// sentinel in the middle of a line is still a valid split point.
//
// An empty previous description means there is nothing to merge into and the
// rendered notes are returned as-is. A previous description containing the
// skip sentinel is returned unchanged, discarding the rendered notes. If the
// previous description has no start sentinel at all, the rendered notes are
// appended after it.
func Merge(rendered, previous string) string {
	if previous == "" {
		return rendered
	}
	if strings.Contains(previous, types.NotesSkipSentinel) {
		return previous
	}

	prefix := previous
	suffix := ""

	if i := strings.Index(previous, types.NotesStartSentinel); i >= 0 {
		prefix = previous[:i]

		// Any repeated start sentinels collapse into the replaced region.
		rest := strings.ReplaceAll(previous[i+len(types.NotesStartSentinel):], types.NotesStartSentinel, "")

		if j := strings.LastIndex(rest, types.NotesEndSentinel); j >= 0 {
			suffix = rest[j+len(types.NotesEndSentinel):]
		} else {
			suffix = rest
		}
	}

	merged := strings.Join([]string{
		strings.Trim(prefix, "\n"),
		rendered,
		strings.Trim(suffix, "\n"),
	}, "\n")

	return strings.Trim(merged, "\"\n")
}
