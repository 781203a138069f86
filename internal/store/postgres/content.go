package postgres

import (
	"context"
	"fmt"

	"github.com/alkime/creatoros/internal/creator"
	"github.com/alkime/creatoros/pkg/collections"
)

func (s *Store) InsertContent(ctx context.Context, item creator.ContentItem) error {
	query, args := contentStruct.InsertInto(contentTable, fromContent(item)).Build()

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Error("Failed to insert content item", "id", item.ID, "user_id", item.UserID, "error", err)
		return fmt.Errorf("failed to insert content item: %w", err)
	}

	return nil
}

func (s *Store) RecentContent(ctx context.Context, owner string, limit int) ([]creator.ContentItem, error) {
	sb := contentStruct.SelectFrom(contentTable)
	sb.Where(sb.Equal("user_id", owner))
	sb.OrderBy("created_at").Desc()
	if limit > 0 {
		sb.Limit(limit)
	}

	query, args := sb.Build()

	var rows []contentRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list content items: %w", err)
	}

	return collections.Apply(rows, toContent), nil
}
