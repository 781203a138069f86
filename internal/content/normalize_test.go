package content

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/alkime/creatoros/internal/creator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("object", func(t *testing.T) {
		res := Parse[Generated](`{"script": "s"}`)
		structured, ok := res.(Structured[Generated])
		require.True(t, ok)
		assert.Equal(t, "s", structured.Value.Script)
	})

	for name, raw := range map[string]string{
		"plain text":     "Here is your content!",
		"null":           "null",
		"trailing text":  `{"script": "s"} thanks!`,
		"wrong shape":    `["a", "b"]`,
		"wrong type":     `{"hooks": "not a list"}`,
		"empty":          "",
		"markdown fence": "```json\n{\"script\": \"s\"}\n```",
	} {
		t.Run(name, func(t *testing.T) {
			res := Parse[Generated](raw)
			unstructured, ok := res.(Unstructured[Generated])
			require.True(t, ok, "expected Unstructured, got %T", res)
			assert.Equal(t, raw, unstructured.Raw)
		})
	}
}

func TestNormalizeContent_Structured(t *testing.T) {
	raw := `{"hooks": ["one", "two", "three", "four"], "script": "Do the thing.", "caption": "Go! #Fitness"}`

	got, fellBack := NormalizeContent(raw, "Fitness")

	assert.False(t, fellBack)
	assert.Equal(t, Generated{
		Hooks:   []string{"one", "two", "three", "four"},
		Script:  "Do the thing.",
		Caption: "Go! #Fitness",
	}, got)
}

func TestNormalizeContent_MissingKeysDefault(t *testing.T) {
	got, fellBack := NormalizeContent(`{"caption": "only a caption"}`, "Fitness")

	assert.False(t, fellBack)
	assert.NotNil(t, got.Hooks)
	assert.Empty(t, got.Hooks)
	assert.Equal(t, "", got.Script)
	assert.Equal(t, "only a caption", got.Caption)
}

func TestNormalizeContent_Fallback(t *testing.T) {
	niches := []string{"Fitness", "Home Cooking", "Personal Finance For Teens", ""}
	raws := []string{
		"short reply",
		strings.Repeat("x", 199),
		strings.Repeat("y", 200),
		strings.Repeat("z", 450),
		strings.Repeat("ü", 300),
		"",
	}

	for _, niche := range niches {
		for _, raw := range raws {
			got, fellBack := NormalizeContent(raw, niche)

			require.True(t, fellBack)
			assert.Len(t, got.Hooks, 3)
			assert.Equal(t, raw, got.Script)

			token := strings.ReplaceAll(niche, " ", "")
			assert.True(t, strings.HasSuffix(got.Caption, "#"+token), "caption %q", got.Caption)
			assert.LessOrEqual(t, utf8.RuneCountInString(got.Caption), 200+1+utf8.RuneCountInString(token))
		}
	}
}

func TestNormalizeContent_FallbackCaption(t *testing.T) {
	got, _ := NormalizeContent("Not JSON at all", "Home Cooking")
	assert.Equal(t, "Not JSON at all #HomeCooking", got.Caption)

	long := strings.Repeat("a", 250)
	got, _ = NormalizeContent(long, "Fitness")
	assert.Equal(t, strings.Repeat("a", 200)+"#Fitness", got.Caption)
}

func TestNormalizeContent_FallbackHooksAreCopies(t *testing.T) {
	first, _ := NormalizeContent("nope", "Fitness")
	first.Hooks[0] = "mutated"

	second, _ := NormalizeContent("nope", "Fitness")
	assert.Equal(t, "Ready to transform your content?", second.Hooks[0])
}

func TestNormalizePlan_Structured(t *testing.T) {
	raw := `[
		{"platform": "Instagram", "content_type": "Reel", "topic": "Morning routine", "reasoning": "Relatable"},
		{"platform": "Snapchat", "topic": 42, "extra": true}
	]`

	items, fellBack := NormalizePlan(raw, jordan)

	assert.False(t, fellBack)
	require.Len(t, items, 2)
	assert.Equal(t, creator.PlanItem{
		"platform":     "Instagram",
		"content_type": "Reel",
		"topic":        "Morning routine",
		"reasoning":    "Relatable",
	}, items[0])
	assert.Equal(t, creator.PlanItem{"platform": "Snapchat", "topic": float64(42), "extra": true}, items[1])
	assert.Equal(t, creator.Unset, items[1].Topic())
}

func TestNormalizePlan_Fallback(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		profile      creator.Profile
		wantPlatform string
	}{
		{name: "plain text", raw: "Here are some ideas", profile: jordan, wantPlatform: "Instagram"},
		{name: "object instead of array", raw: `{"platform": "TikTok"}`, profile: jordan, wantPlatform: "Instagram"},
		{name: "empty array", raw: `[]`, profile: jordan, wantPlatform: "Instagram"},
		{name: "array of strings", raw: `["idea one"]`, profile: jordan, wantPlatform: "Instagram"},
		{
			name:         "first listed platform",
			raw:          "nope",
			profile:      creator.Profile{Niche: "Fitness", Platforms: []string{"YouTube", "Instagram"}},
			wantPlatform: "YouTube",
		},
		{
			name:         "no platforms",
			raw:          "nope",
			profile:      creator.Profile{Niche: "Fitness"},
			wantPlatform: "Instagram",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, fellBack := NormalizePlan(tt.raw, tt.profile)

			assert.True(t, fellBack)
			require.Len(t, items, 1)
			assert.Equal(t, tt.wantPlatform, items[0].Platform())
			assert.Equal(t, "Reel", items[0].ContentType())
			assert.Equal(t, "Trending topic in Fitness", items[0].Topic())
			assert.Equal(t, "High engagement potential", items[0].Reasoning())
		})
	}
}

func TestNicheHashtag(t *testing.T) {
	assert.Equal(t, "#Fitness", NicheHashtag("Fitness"))
	assert.Equal(t, "#HomeCooking", NicheHashtag("Home Cooking"))
	assert.Equal(t, "#", NicheHashtag(""))
}
