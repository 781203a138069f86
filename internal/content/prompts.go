package content

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alkime/creatoros/internal/creator"
)

// Session kinds used in correlation tokens.
const (
	SessionContent = "content_gen"
	SessionPlan    = "daily_plan"
)

// Prompt is the pair of instruction blocks sent to the generation service.
type Prompt struct {
	System string
	Task   string
}

// contentSystemPrompt is formatted with niche, tone, audience and platforms.
const contentSystemPrompt = `You are a professional content strategist and scriptwriter for social media creators.

Your creator profile:
- Niche: %s
- Tone: %s
- Target Audience: %s
- Platforms: %s

Create content that matches their unique voice and resonates with their audience.`

// contentOutputContract is formatted with the platform.
const contentOutputContract = `Generate:
1. 3 Hook Options (attention-grabbing first lines)
2. Complete Script (if applicable for video content)
3. Caption (optimized for %s)

Format your response as JSON with these keys:
{
    "hooks": ["hook1", "hook2", "hook3"],
    "script": "full script here",
    "caption": "caption with relevant hashtags"
}`

// planSystemPrompt is formatted with niche, then niche, tone, audience and platforms.
const planSystemPrompt = `You are a content strategist creating a daily posting plan for a %s creator.

Creator profile:
- Niche: %s
- Tone: %s
- Target Audience: %s
- Platforms: %s`

// planTaskPrompt is formatted with the platform list.
const planTaskPrompt = `Create a daily content plan for today with 2-3 content ideas optimized for maximum engagement.

For each idea, provide:
1. Platform (choose from: %s)
2. Content Type (Reel/Post/Video/Story)
3. Topic
4. Why it works (brief reasoning)

Format as JSON array:
[
    {
        "platform": "Instagram",
        "content_type": "Reel",
        "topic": "topic here",
        "reasoning": "why this will perform well"
    }
]`

// BuildContentPrompt assembles the instruction blocks for one content item.
// The context line and the history digest are included only when non-empty.
func BuildContentPrompt(p creator.Profile, platform, contentType, extraContext, digest string) Prompt {
	system := fmt.Sprintf(contentSystemPrompt, p.Niche, p.Tone, p.TargetAudience, platformList(p))

	var task strings.Builder
	fmt.Fprintf(&task, "Create a %s for %s.\n\n", contentType, platform)
	task.WriteString("Requirements:\n")
	fmt.Fprintf(&task, "- Platform: %s\n", platform)
	fmt.Fprintf(&task, "- Content Type: %s\n", contentType)
	fmt.Fprintf(&task, "- Tone: %s\n", p.Tone)
	fmt.Fprintf(&task, "- Target Audience: %s\n", p.TargetAudience)
	if extraContext != "" {
		fmt.Fprintf(&task, "- Additional Context: %s\n", extraContext)
	}
	if digest != "" {
		task.WriteString("\nRecent content created:\n")
		task.WriteString(digest)
	}
	task.WriteString("\n")
	fmt.Fprintf(&task, contentOutputContract, platform)

	return Prompt{
		System: system,
		Task:   task.String(),
	}
}

// BuildPlanPrompt assembles the instruction blocks for a daily plan.
func BuildPlanPrompt(p creator.Profile) Prompt {
	platforms := platformList(p)

	return Prompt{
		System: fmt.Sprintf(planSystemPrompt, p.Niche, p.Niche, p.Tone, p.TargetAudience, platforms),
		Task:   fmt.Sprintf(planTaskPrompt, platforms),
	}
}

// SessionID builds the correlation token "{kind}_{owner}_{unix seconds}".
// It only identifies the upstream conversation and never reaches prompt text.
func SessionID(kind, owner string, now time.Time) string {
	seconds := float64(now.UnixMicro()) / 1e6
	return kind + "_" + owner + "_" + strconv.FormatFloat(seconds, 'f', -1, 64)
}

func platformList(p creator.Profile) string {
	return strings.Join(p.Platforms, ", ")
}
