package creator

import "time"

// DateLayout is the calendar-day format used for DailyPlan.Date.
const DateLayout = "2006-01-02"

// Unset is returned by PlanItem accessors for missing or non-string fields.
const Unset = ""

// PlanItem is one suggestion in a daily plan. Items are stored exactly as the
// generation service returned them, so the map may carry extra keys or miss
// the conventional ones.
type PlanItem map[string]any

// Platform returns the "platform" field.
func (p PlanItem) Platform() string { return p.str("platform") }

// ContentType returns the "content_type" field.
func (p PlanItem) ContentType() string { return p.str("content_type") }

// Topic returns the "topic" field.
func (p PlanItem) Topic() string { return p.str("topic") }

// Reasoning returns the "reasoning" field.
func (p PlanItem) Reasoning() string { return p.str("reasoning") }

func (p PlanItem) str(key string) string {
	s, ok := p[key].(string)
	if !ok {
		return Unset
	}

	return s
}

// DailyPlan holds the plan items for one owner and one UTC calendar day.
type DailyPlan struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Date        string     `json:"date"`
	PlanItems   []PlanItem `json:"plan_items"`
	GeneratedAt time.Time  `json:"generated_at"`
}

// GeneratePlanRequest asks for today's plan for a profile.
type GeneratePlanRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// PlanDate returns the UTC calendar day of t in DateLayout.
func PlanDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
