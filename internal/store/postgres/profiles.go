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

func (s *Store) GetProfile(ctx context.Context, id string) (creator.Profile, error) {
	sb := profileStruct.SelectFrom(profilesTable)
	sb.Where(sb.Equal("id", id))

	query, args := sb.Build()

	return s.getProfile(ctx, query, args)
}

func (s *Store) GetProfileByName(ctx context.Context, name string) (creator.Profile, error) {
	sb := profileStruct.SelectFrom(profilesTable)
	sb.Where(sb.Equal("name", name))

	query, args := sb.Build()

	return s.getProfile(ctx, query, args)
}

func (s *Store) getProfile(ctx context.Context, query string, args []any) (creator.Profile, error) {
	var row profileRow
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return creator.Profile{}, store.ErrNotFound
		}
		return creator.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	return toProfile(row), nil
}

func (s *Store) UpsertProfile(ctx context.Context, p creator.Profile) (creator.Profile, error) {
	ib := profileStruct.InsertInto(profilesTable, fromProfile(p))
	ib.SQL("ON CONFLICT (name) DO UPDATE SET " + excludedAssignments(
		"niche", "tone", "target_audience", "platforms", "created_at",
	))
	ib.SQL("RETURNING " + strings.Join(profileStruct.Columns(), ", "))

	query, args := ib.Build()

	s.logger.Debug("Upserting profile", "name", p.Name)

	var row profileRow
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		s.logger.Error("Failed to upsert profile", "name", p.Name, "error", err)
		return creator.Profile{}, fmt.Errorf("failed to upsert profile: %w", err)
	}

	return toProfile(row), nil
}

// excludedAssignments renders "col = EXCLUDED.col" for each column.
func excludedAssignments(columns ...string) string {
	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = fmt.Sprintf("%s = EXCLUDED.%s", col, col)
	}

	return strings.Join(parts, ", ")
}
