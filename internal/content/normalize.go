package content

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/alkime/creatoros/internal/creator"
)

// ParseResult is the outcome of parsing generation output: either
// Structured (the text decoded into T) or Unstructured (it did not).
type ParseResult[T any] interface {
	isParseResult(T)
}

// Structured holds successfully decoded output.
type Structured[T any] struct {
	Value T
}

// Unstructured holds output that could not be decoded, verbatim.
type Unstructured[T any] struct {
	Raw string
}

func (Structured[T]) isParseResult(T)   {}
func (Unstructured[T]) isParseResult(T) {}

// Parse strictly decodes raw as JSON into T. A JSON null, trailing data or a
// shape that does not fit T gives Unstructured.
func Parse[T any](raw string) ParseResult[T] {
	var v *T
	if err := json.Unmarshal([]byte(raw), &v); err != nil || v == nil {
		return Unstructured[T]{Raw: raw}
	}

	return Structured[T]{Value: *v}
}

// Generated is the normalized hooks/script/caption of one content item.
type Generated struct {
	Hooks   []string `json:"hooks"`
	Script  string   `json:"script"`
	Caption string   `json:"caption"`
}

// Fallback values used when the generation output is not structured.
var fallbackHooks = []string{
	"Ready to transform your content?",
	"Here's what nobody tells you about...",
	"Stop scrolling - this will change everything",
}

const (
	fallbackCaptionRunes = 200
	fallbackPlatform     = "Instagram"
	fallbackContentType  = "Reel"
	fallbackReasoning    = "High engagement potential"
)

// NormalizeContent turns generation output into a Generated value. Missing
// keys default to empty values. Output that is not a JSON object falls back
// to three generic hooks, the raw text as script and a caption built from
// the raw text and a niche hashtag. The second result reports a fallback.
func NormalizeContent(raw, niche string) (Generated, bool) {
	if res, ok := Parse[Generated](raw).(Structured[Generated]); ok {
		g := res.Value
		if g.Hooks == nil {
			g.Hooks = []string{}
		}
		return g, false
	}

	return Generated{
		Hooks:   append([]string(nil), fallbackHooks...),
		Script:  raw,
		Caption: fallbackCaption(raw, niche),
	}, true
}

// NormalizePlan turns generation output into plan items. A non-empty JSON
// array of objects is used verbatim; anything else becomes a single generic
// item for the profile. A well-formed empty array also takes the fallback so
// a stored plan always has at least one item. The second result reports a
// fallback.
func NormalizePlan(raw string, p creator.Profile) ([]creator.PlanItem, bool) {
	if res, ok := Parse[[]creator.PlanItem](raw).(Structured[[]creator.PlanItem]); ok && len(res.Value) > 0 {
		return res.Value, false
	}

	return []creator.PlanItem{{
		"platform":     p.PrimaryPlatform(fallbackPlatform),
		"content_type": fallbackContentType,
		"topic":        "Trending topic in " + p.Niche,
		"reasoning":    fallbackReasoning,
	}}, true
}

// NicheHashtag returns "#" followed by the niche with spaces removed.
func NicheHashtag(niche string) string {
	return "#" + strings.ReplaceAll(niche, " ", "")
}

// fallbackCaption is the first 200 characters of raw followed by the niche
// hashtag. A separating space is added only when raw was shorter than the
// limit, so the caption never exceeds 200 characters plus the hashtag. For
// long replies the hashtag is therefore attached to the last word
// ("...word#Fitness").
func fallbackCaption(raw, niche string) string {
	head := truncateRunes(raw, fallbackCaptionRunes)
	if head != "" && utf8.RuneCountInString(head) < fallbackCaptionRunes {
		head += " "
	}

	return head + NicheHashtag(niche)
}
