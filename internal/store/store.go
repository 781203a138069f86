// Package store defines the persistence collaborators of the content pipeline
// and an in-memory implementation of them.
package store

import (
	"context"
	"errors"

	"github.com/alkime/creatoros/internal/creator"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ProfileStore persists creator profiles.
type ProfileStore interface {
	GetProfile(ctx context.Context, id string) (creator.Profile, error)
	GetProfileByName(ctx context.Context, name string) (creator.Profile, error)
	// UpsertProfile stores p keyed by name. When a profile with the same name
	// exists its ID is kept and every other field is replaced. The stored
	// record is returned.
	UpsertProfile(ctx context.Context, p creator.Profile) (creator.Profile, error)
}

// ContentStore persists generated content items.
type ContentStore interface {
	InsertContent(ctx context.Context, item creator.ContentItem) error
	// RecentContent returns at most limit items of owner, newest first. A
	// non-positive limit returns every item.
	RecentContent(ctx context.Context, owner string, limit int) ([]creator.ContentItem, error)
}

// PlanStore persists daily plans.
type PlanStore interface {
	GetPlan(ctx context.Context, owner, date string) (creator.DailyPlan, error)
	// UpsertPlan stores plan keyed by (UserID, Date). An existing plan keeps
	// its ID and gets the new items and generation time.
	UpsertPlan(ctx context.Context, plan creator.DailyPlan) (creator.DailyPlan, error)
}

// Store bundles every collaborator the pipeline needs.
type Store interface {
	ProfileStore
	ContentStore
	PlanStore
}
