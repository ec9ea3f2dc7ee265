package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/squaredcircle/ringside/internal/domain/event"
	qb "github.com/squaredcircle/ringside/internal/platform/querybuilder"
)

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) ListAll(ctx context.Context) ([]event.Event, error) {
	query, args, err := qb.Select("*").From("events").
		Where(qb.IsNull("deleted_at")).
		OrderBy("event_date", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list events query: %w", err)
	}

	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return eventsToDomain(rows)
}

func (r *EventRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]event.Event, error) {
	query, args, err := qb.Select("*").From("events").
		Where(
			qb.Expr("event_date >= ?", timeToUnix(from)),
			qb.Expr("event_date < ?", timeToUnix(to)),
			qb.IsNull("deleted_at"),
		).
		OrderBy("event_date", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list events by date range query: %w", err)
	}

	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list events by date range: %w", err)
	}

	return eventsToDomain(rows)
}

func (r *EventRepository) Upsert(ctx context.Context, ev event.Event) error {
	matches, err := sonic.Marshal(ev.Matches)
	if err != nil {
		return fmt.Errorf("marshal event matches: %w", err)
	}

	insertModel := eventInsertModel{
		PublicID:  ev.ID,
		Name:      ev.Name,
		EventDate: timeToUnix(ev.Date),
		Matches:   matches,
	}
	query, args, err := qb.InsertModel("events", insertModel, `ON CONFLICT (public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    name = EXCLUDED.name,
    event_date = EXCLUDED.event_date,
    matches = EXCLUDED.matches,
    updated_at = NOW(),
    deleted_at = NULL`)
	if err != nil {
		return fmt.Errorf("build upsert event query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert event: %w", err)
	}
	return nil
}

func eventsToDomain(rows []eventTableModel) ([]event.Event, error) {
	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		ev := event.Event{
			ID:   row.PublicID,
			Name: row.Name,
			Date: unixToTime(row.EventDate),
		}
		if len(row.Matches) > 0 {
			if err := sonic.Unmarshal(row.Matches, &ev.Matches); err != nil {
				return nil, fmt.Errorf("unmarshal matches for event %s: %w", row.PublicID, err)
			}
		}
		out = append(out, ev)
	}
	return out, nil
}
