package content

import (
	"strings"
	"testing"

	"github.com/alkime/creatoros/internal/creator"
	"github.com/stretchr/testify/assert"
)

func TestHistoryDigest(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		assert.Equal(t, "", HistoryDigest(nil))
		assert.Equal(t, "", HistoryDigest([]creator.ContentItem{}))
	})

	t.Run("renders at most three items in order", func(t *testing.T) {
		items := []creator.ContentItem{
			{Platform: "Instagram", ContentType: "Reel", Caption: "newest"},
			{Platform: "TikTok", ContentType: "Video", Caption: "middle"},
			{Platform: "YouTube", ContentType: "Short", Caption: "older"},
			{Platform: "Instagram", ContentType: "Post", Caption: "oldest"},
		}

		want := "1. Instagram - Reel: newest...\n" +
			"2. TikTok - Video: middle...\n" +
			"3. YouTube - Short: older...\n"
		assert.Equal(t, want, HistoryDigest(items))
	})

	t.Run("caption is cut to 100 characters", func(t *testing.T) {
		caption := strings.Repeat("é", 150)
		digest := HistoryDigest([]creator.ContentItem{{Platform: "TikTok", ContentType: "Video", Caption: caption}})

		assert.Equal(t, "1. TikTok - Video: "+strings.Repeat("é", 100)+"...\n", digest)
	})
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{in: "hello", n: 10, want: "hello"},
		{in: "hello", n: 5, want: "hello"},
		{in: "hello", n: 2, want: "he"},
		{in: "héllo", n: 2, want: "hé"},
		{in: "hello", n: 0, want: ""},
		{in: "", n: 3, want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, truncateRunes(tt.in, tt.n), "truncateRunes(%q, %d)", tt.in, tt.n)
	}
}
