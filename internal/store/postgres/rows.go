package postgres

import (
	"time"

	"github.com/alkime/creatoros/internal/creator"
	"github.com/huandu/go-sqlbuilder"
	"github.com/lib/pq"
)

const (
	profilesTable = "profiles"
	contentTable  = "content_items"
	plansTable    = "daily_plans"
)

type profileRow struct {
	ID             string         `db:"id"`
	Name           string         `db:"name"`
	Niche          string         `db:"niche"`
	Tone           string         `db:"tone"`
	TargetAudience string         `db:"target_audience"`
	Platforms      pq.StringArray `db:"platforms"`
	CreatedAt      time.Time      `db:"created_at"`
}

type contentRow struct {
	ID          string         `db:"id"`
	UserID      string         `db:"user_id"`
	Platform    string         `db:"platform"`
	ContentType string         `db:"content_type"`
	Script      string         `db:"script"`
	Caption     string         `db:"caption"`
	Hooks       pq.StringArray `db:"hooks"`
	CreatedAt   time.Time      `db:"created_at"`
	Posted      bool           `db:"posted"`
}

type planRow struct {
	ID          string                    `db:"id"`
	UserID      string                    `db:"user_id"`
	PlanDate    string                    `db:"plan_date"`
	PlanItems   JSONB[[]creator.PlanItem] `db:"plan_items"`
	GeneratedAt time.Time                 `db:"generated_at"`
}

var (
	profileStruct = sqlbuilder.NewStruct(new(profileRow)).For(sqlbuilder.PostgreSQL)
	contentStruct = sqlbuilder.NewStruct(new(contentRow)).For(sqlbuilder.PostgreSQL)
	planStruct    = sqlbuilder.NewStruct(new(planRow)).For(sqlbuilder.PostgreSQL)
)

func fromProfile(p creator.Profile) *profileRow {
	platforms := p.Platforms
	if platforms == nil {
		platforms = []string{}
	}

	return &profileRow{
		ID:             p.ID,
		Name:           p.Name,
		Niche:          p.Niche,
		Tone:           p.Tone,
		TargetAudience: p.TargetAudience,
		Platforms:      pq.StringArray(platforms),
		CreatedAt:      p.CreatedAt.UTC(),
	}
}

func toProfile(row profileRow) creator.Profile {
	platforms := []string(row.Platforms)
	if platforms == nil {
		platforms = []string{}
	}

	return creator.Profile{
		ID:             row.ID,
		Name:           row.Name,
		Niche:          row.Niche,
		Tone:           row.Tone,
		TargetAudience: row.TargetAudience,
		Platforms:      platforms,
		CreatedAt:      row.CreatedAt.UTC(),
	}
}

func fromContent(item creator.ContentItem) *contentRow {
	hooks := item.Hooks
	if hooks == nil {
		hooks = []string{}
	}

	return &contentRow{
		ID:          item.ID,
		UserID:      item.UserID,
		Platform:    item.Platform,
		ContentType: item.ContentType,
		Script:      item.Script,
		Caption:     item.Caption,
		Hooks:       pq.StringArray(hooks),
		CreatedAt:   item.CreatedAt.UTC(),
		Posted:      item.Posted,
	}
}

func toContent(row contentRow) creator.ContentItem {
	hooks := []string(row.Hooks)
	if hooks == nil {
		hooks = []string{}
	}

	return creator.ContentItem{
		ID:          row.ID,
		UserID:      row.UserID,
		Platform:    row.Platform,
		ContentType: row.ContentType,
		Script:      row.Script,
		Caption:     row.Caption,
		Hooks:       hooks,
		CreatedAt:   row.CreatedAt.UTC(),
		Posted:      row.Posted,
	}
}

func fromPlan(plan creator.DailyPlan) *planRow {
	items := plan.PlanItems
	if items == nil {
		items = []creator.PlanItem{}
	}

	return &planRow{
		ID:          plan.ID,
		UserID:      plan.UserID,
		PlanDate:    plan.Date,
		PlanItems:   JSONB[[]creator.PlanItem]{Data: items},
		GeneratedAt: plan.GeneratedAt.UTC(),
	}
}

func toPlan(row planRow) creator.DailyPlan {
	items := row.PlanItems.Data
	if items == nil {
		items = []creator.PlanItem{}
	}

	return creator.DailyPlan{
		ID:          row.ID,
		UserID:      row.UserID,
		Date:        row.PlanDate,
		PlanItems:   items,
		GeneratedAt: row.GeneratedAt.UTC(),
	}
}
