package postgres

import (
	"time"
)

type eventTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	Name      string     `db:"name"`
	EventDate int64      `db:"event_date"`
	Matches   []byte     `db:"matches"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type eventInsertModel struct {
	PublicID  string `db:"public_id"`
	Name      string `db:"name"`
	EventDate int64  `db:"event_date"`
	Matches   []byte `db:"matches"`
}

func unixToTime(v int64) time.Time {
	return time.Unix(v, 0).UTC()
}

func timeToUnix(t time.Time) int64 {
	return t.UTC().Unix()
}

func nullableUnix(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	v := timeToUnix(*t)
	return &v
}

func nullUnixToTimePtr(v *int64) *time.Time {
	if v == nil {
		return nil
	}
	t := unixToTime(*v)
	return &t
}
