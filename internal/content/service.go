// Package content turns creator profiles and their recent history into
// generated content and daily plans.
package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/alkime/creatoros/internal/creator"
	"github.com/alkime/creatoros/internal/generation"
	"github.com/alkime/creatoros/internal/metrics"
	"github.com/alkime/creatoros/internal/store"
	"github.com/alkime/creatoros/pkg/collections"
	"github.com/google/uuid"
)

// Service runs the generation pipeline against a store and a generation client.
type Service struct {
	store  store.Store
	client generation.Client
	model  string
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// Option customizes a Service.
type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// NewService creates a Service. model is passed to every generation call.
func NewService(st store.Store, client generation.Client, model string, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		store:  st,
		client: client,
		model:  model,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// UpsertProfile creates the profile or, when one with the same name exists,
// replaces all of its fields but the ID.
func (s *Service) UpsertProfile(ctx context.Context, in creator.ProfileInput) (creator.Profile, error) {
	if strings.TrimSpace(in.Name) == "" {
		return creator.Profile{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	platforms := in.Platforms
	if platforms == nil {
		platforms = []string{}
	}

	p, err := s.store.UpsertProfile(ctx, creator.Profile{
		ID:             s.newID(),
		Name:           in.Name,
		Niche:          in.Niche,
		Tone:           in.Tone,
		TargetAudience: in.TargetAudience,
		Platforms:      platforms,
		CreatedAt:      s.timestamp(),
	})
	if err != nil {
		return creator.Profile{}, fmt.Errorf("failed to save profile: %w", err)
	}

	s.logger.Info("Saved profile", "user_id", p.ID, "name", p.Name)

	return p, nil
}

// GetProfile returns the profile with the given id or ErrProfileNotFound.
func (s *Service) GetProfile(ctx context.Context, id string) (creator.Profile, error) {
	p, err := s.store.GetProfile(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return creator.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		return creator.Profile{}, fmt.Errorf("failed to load profile: %w", err)
	}

	return p, nil
}

// GenerateContent generates and stores one content item for the requesting
// profile, personalized with its recent history.
func (s *Service) GenerateContent(ctx context.Context, req creator.GenerateContentRequest) (creator.ContentItem, error) {
	profile, err := s.GetProfile(ctx, req.UserID)
	if err != nil {
		return creator.ContentItem{}, err
	}

	recent, err := s.store.RecentContent(ctx, profile.ID, HistoryContextLimit)
	if err != nil {
		return creator.ContentItem{}, fmt.Errorf("failed to load content history: %w", err)
	}

	prompt := BuildContentPrompt(profile, req.Platform, req.ContentType, req.AdditionalContext, HistoryDigest(recent))

	raw, err := s.complete(ctx, metrics.KindContent, SessionContent, profile.ID, prompt)
	if err != nil {
		return creator.ContentItem{}, err
	}

	generated, fellBack := NormalizeContent(raw, profile.Niche)
	if fellBack {
		metrics.GenerationFallbacksTotal.WithLabelValues(metrics.KindContent).Inc()
		s.logger.Warn("Generation output was not structured, using fallback content",
			"user_id", profile.ID,
			"platform", req.Platform,
			"content_type", req.ContentType,
		)
	}

	item := creator.ContentItem{
		ID:          s.newID(),
		UserID:      req.UserID,
		Platform:    req.Platform,
		ContentType: req.ContentType,
		Script:      generated.Script,
		Caption:     generated.Caption,
		Hooks:       generated.Hooks,
		CreatedAt:   s.timestamp(),
	}

	if err := s.store.InsertContent(ctx, item); err != nil {
		return creator.ContentItem{}, fmt.Errorf("failed to save content item: %w", err)
	}

	return item, nil
}

// History lists an owner's content items, newest first. A non-positive limit
// uses HistoryListLimit. Unknown owners get an empty list.
func (s *Service) History(ctx context.Context, owner string, limit int) ([]creator.ContentItem, error) {
	if limit <= 0 {
		limit = HistoryListLimit
	}

	items, err := s.store.RecentContent(ctx, owner, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load content history: %w", err)
	}
	if items == nil {
		items = []creator.ContentItem{}
	}

	return items, nil
}

// GeneratePlan generates today's plan for the owner and stores it, replacing
// the items of an existing plan for the same UTC day.
func (s *Service) GeneratePlan(ctx context.Context, owner string) (creator.DailyPlan, error) {
	profile, err := s.GetProfile(ctx, owner)
	if err != nil {
		return creator.DailyPlan{}, err
	}

	raw, err := s.complete(ctx, metrics.KindPlan, SessionPlan, profile.ID, BuildPlanPrompt(profile))
	if err != nil {
		return creator.DailyPlan{}, err
	}

	items, fellBack := NormalizePlan(raw, profile)
	if fellBack {
		metrics.GenerationFallbacksTotal.WithLabelValues(metrics.KindPlan).Inc()
		s.logger.Warn("Generation output was not a plan, using fallback plan", "user_id", profile.ID)
	}
	s.reportOffProfile(profile, items)

	now := s.timestamp()
	plan, err := s.store.UpsertPlan(ctx, creator.DailyPlan{
		ID:          s.newID(),
		UserID:      owner,
		Date:        creator.PlanDate(now),
		PlanItems:   items,
		GeneratedAt: now,
	})
	if err != nil {
		return creator.DailyPlan{}, fmt.Errorf("failed to save daily plan: %w", err)
	}

	return plan, nil
}

// TodayPlan returns the owner's plan for the current UTC day, or nil when
// none was generated yet.
func (s *Service) TodayPlan(ctx context.Context, owner string) (*creator.DailyPlan, error) {
	plan, err := s.store.GetPlan(ctx, owner, creator.PlanDate(s.now()))
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load daily plan: %w", err)
	}

	return &plan, nil
}

// timestamp is the current UTC time at the microsecond precision Postgres
// stores, so returned records equal what is read back later.
func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func (s *Service) complete(ctx context.Context, kind, sessionKind, owner string, prompt Prompt) (string, error) {
	start := time.Now()
	raw, err := s.client.Complete(ctx, generation.Request{
		System:    prompt.System,
		Task:      prompt.Task,
		Model:     s.model,
		SessionID: SessionID(sessionKind, owner, s.now()),
	})
	metrics.GenerationDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.GenerationRequestsTotal.WithLabelValues(kind, "error").Inc()
		s.logger.Error("Generation service call failed", "kind", kind, "user_id", owner, "error", err)
		return "", &GenerationError{Op: kind, Err: err}
	}

	metrics.GenerationRequestsTotal.WithLabelValues(kind, "success").Inc()

	return raw, nil
}

// reportOffProfile logs plan items whose platform the profile does not list.
// Such items are kept as generated.
func (s *Service) reportOffProfile(profile creator.Profile, items []creator.PlanItem) {
	off := collections.Filter(items, func(item creator.PlanItem) bool {
		return !profile.HasPlatform(item.Platform())
	})
	if len(off) == 0 {
		return
	}

	metrics.PlanItemsOffProfileTotal.Add(float64(len(off)))
	s.logger.Warn("Plan items name platforms outside the profile",
		"user_id", profile.ID,
		"platforms", collections.Apply(off, creator.PlanItem.Platform),
	)
}
