package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/alkime/creatoros/internal/creator"
	"github.com/alkime/creatoros/internal/store"
)

func (s *Store) GetPlan(ctx context.Context, owner, date string) (creator.DailyPlan, error) {
	sb := planStruct.SelectFrom(plansTable)
	sb.Where(
		sb.Equal("user_id", owner),
		sb.Equal("plan_date", date),
	)

	query, args := sb.Build()

	var row planRow
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return creator.DailyPlan{}, store.ErrNotFound
		}
		return creator.DailyPlan{}, fmt.Errorf("failed to get daily plan: %w", err)
	}

	return toPlan(row), nil
}

func (s *Store) UpsertPlan(ctx context.Context, plan creator.DailyPlan) (creator.DailyPlan, error) {
	ib := planStruct.InsertInto(plansTable, fromPlan(plan))
	ib.SQL("ON CONFLICT (user_id, plan_date) DO UPDATE SET " + excludedAssignments("plan_items", "generated_at"))
	ib.SQL("RETURNING " + strings.Join(planStruct.Columns(), ", "))

	query, args := ib.Build()

	s.logger.Debug("Upserting daily plan", "user_id", plan.UserID, "date", plan.Date)

	var row planRow
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		s.logger.Error("Failed to upsert daily plan", "user_id", plan.UserID, "date", plan.Date, "error", err)
		return creator.DailyPlan{}, fmt.Errorf("failed to upsert daily plan: %w", err)
	}

	return toPlan(row), nil
}
