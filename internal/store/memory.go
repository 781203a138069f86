package store

import (
	"context"
	"slices"
	"sync"

	"github.com/alkime/creatoros/internal/creator"
)

type planKey struct {
	owner string
	date  string
}

// Memory is a process-local Store. It is safe for concurrent use and every
// upsert is atomic under its lock.
type Memory struct {
	mu       sync.RWMutex
	profiles map[string]creator.Profile
	byName   map[string]string
	content  []creator.ContentItem
	plans    map[planKey]creator.DailyPlan
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		profiles: make(map[string]creator.Profile),
		byName:   make(map[string]string),
		plans:    make(map[planKey]creator.DailyPlan),
	}
}

func (m *Memory) GetProfile(_ context.Context, id string) (creator.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.profiles[id]
	if !ok {
		return creator.Profile{}, ErrNotFound
	}

	return cloneProfile(p), nil
}

func (m *Memory) GetProfileByName(_ context.Context, name string) (creator.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byName[name]
	if !ok {
		return creator.Profile{}, ErrNotFound
	}

	return cloneProfile(m.profiles[id]), nil
}

func (m *Memory) UpsertProfile(_ context.Context, p creator.Profile) (creator.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id, ok := m.byName[p.Name]; ok {
		p.ID = id
	}

	p = cloneProfile(p)
	m.profiles[p.ID] = p
	m.byName[p.Name] = p.ID

	return cloneProfile(p), nil
}

func (m *Memory) InsertContent(_ context.Context, item creator.ContentItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	item.Hooks = slices.Clone(item.Hooks)
	m.content = append(m.content, item)

	return nil
}

func (m *Memory) RecentContent(_ context.Context, owner string, limit int) ([]creator.ContentItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := []creator.ContentItem{}
	for _, item := range m.content {
		if item.UserID == owner {
			item.Hooks = slices.Clone(item.Hooks)
			items = append(items, item)
		}
	}

	// Stable sort keeps insertion order for equal timestamps, so reversing
	// first makes the later insert win ties.
	slices.Reverse(items)
	slices.SortStableFunc(items, func(a, b creator.ContentItem) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	return items, nil
}

func (m *Memory) GetPlan(_ context.Context, owner, date string) (creator.DailyPlan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	plan, ok := m.plans[planKey{owner: owner, date: date}]
	if !ok {
		return creator.DailyPlan{}, ErrNotFound
	}

	return clonePlan(plan), nil
}

func (m *Memory) UpsertPlan(_ context.Context, plan creator.DailyPlan) (creator.DailyPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := planKey{owner: plan.UserID, date: plan.Date}
	if existing, ok := m.plans[key]; ok {
		plan.ID = existing.ID
	}

	m.plans[key] = clonePlan(plan)

	return clonePlan(plan), nil
}

func cloneProfile(p creator.Profile) creator.Profile {
	p.Platforms = slices.Clone(p.Platforms)
	return p
}

func clonePlan(plan creator.DailyPlan) creator.DailyPlan {
	plan.PlanItems = slices.Clone(plan.PlanItems)
	return plan
}
