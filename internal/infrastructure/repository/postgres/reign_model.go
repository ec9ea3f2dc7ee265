package postgres

import "time"

type reignTableModel struct {
	ID        int64      `db:"id"`
	Performer string     `db:"performer_slug"`
	Title     string     `db:"title"`
	WonAt     int64      `db:"won_at"`
	LostAt    *int64     `db:"lost_at"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type reignInsertModel struct {
	Performer string `db:"performer_slug"`
	Title     string `db:"title"`
	WonAt     int64  `db:"won_at"`
	LostAt    *int64 `db:"lost_at"`
}
