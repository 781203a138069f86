package content

import (
	"fmt"
	"strings"

	"github.com/alkime/creatoros/internal/creator"
	"github.com/alkime/creatoros/pkg/collections"
)

const (
	// HistoryContextLimit is how many recent items are read as generation context.
	HistoryContextLimit = 5
	// HistoryListLimit is the default page size of the history listing.
	HistoryListLimit = 20

	digestItems        = 3
	digestCaptionRunes = 100
)

// HistoryDigest renders the most recent items (newest first) as numbered
// lines "{n}. {platform} - {content_type}: {caption prefix}...". At most three
// items are rendered; no items yields "".
func HistoryDigest(items []creator.ContentItem) string {
	var sb strings.Builder
	for i, item := range collections.Take(items, digestItems) {
		fmt.Fprintf(&sb, "%d. %s - %s: %s...\n",
			i+1, item.Platform, item.ContentType, truncateRunes(item.Caption, digestCaptionRunes))
	}

	return sb.String()
}

// truncateRunes returns the first n characters of s.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}

	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}

	return s
}
