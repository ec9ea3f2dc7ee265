package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/squaredcircle/ringside/internal/domain/reign"
	qb "github.com/squaredcircle/ringside/internal/platform/querybuilder"
)

type ReignRepository struct {
	db *sqlx.DB
}

func NewReignRepository(db *sqlx.DB) *ReignRepository {
	return &ReignRepository{db: db}
}

func (r *ReignRepository) ListAll(ctx context.Context) ([]reign.Reign, error) {
	query, args, err := qb.Select("*").From("title_reigns").
		Where(qb.IsNull("deleted_at")).
		OrderBy("won_at", "title", "performer_slug").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list title reigns query: %w", err)
	}

	var rows []reignTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list title reigns: %w", err)
	}

	out := make([]reign.Reign, 0, len(rows))
	for _, row := range rows {
		out = append(out, reign.Reign{
			Performer: row.Performer,
			Title:     row.Title,
			WonAt:     unixToTime(row.WonAt),
			LostAt:    nullUnixToTimePtr(row.LostAt),
		})
	}
	return out, nil
}

func (r *ReignRepository) Upsert(ctx context.Context, item reign.Reign) error {
	insertModel := reignInsertModel{
		Performer: item.Performer,
		Title:     item.Title,
		WonAt:     timeToUnix(item.WonAt),
		LostAt:    nullableUnix(item.LostAt),
	}
	query, args, err := qb.InsertModel("title_reigns", insertModel, `ON CONFLICT (performer_slug, title, won_at) WHERE deleted_at IS NULL
DO UPDATE SET
    lost_at = EXCLUDED.lost_at,
    updated_at = NOW(),
    deleted_at = NULL`)
	if err != nil {
		return fmt.Errorf("build upsert title reign query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert title reign: %w", err)
	}
	return nil
}
