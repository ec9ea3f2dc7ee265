package memory

import (
	"context"
	"testing"
	"time"

	"github.com/squaredcircle/ringside/internal/domain/reign"
)

func TestReignRepository_UpsertAndList(t *testing.T) {
	t.Parallel()

	repo := NewReignRepository(nil)
	ctx := context.Background()

	if err := repo.Upsert(ctx, reign.Reign{Performer: "Gunther", Title: "World Heavyweight Championship", WonAt: utc(2025, time.March, 1)}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := repo.Upsert(ctx, reign.Reign{Performer: "Jey Uso", Title: "World Heavyweight Championship", WonAt: utc(2025, time.January, 6)}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 2 || all[0].Performer != "Jey Uso" || all[1].Performer != "Gunther" {
		t.Fatalf("reigns not sorted by won date: %+v", all)
	}
}

func TestReignRepository_UpsertClosesExistingInterval(t *testing.T) {
	t.Parallel()

	repo := NewReignRepository(nil)
	ctx := context.Background()

	open := reign.Reign{Performer: "Gunther", Title: "World Heavyweight Championship", WonAt: utc(2025, time.March, 1)}
	if err := repo.Upsert(ctx, open); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	lost := utc(2025, time.June, 7)
	closed := open
	closed.LostAt = &lost
	if err := repo.Upsert(ctx, closed); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("same identity must replace, got %d rows", len(all))
	}
	if all[0].LostAt == nil || !all[0].LostAt.Equal(lost) {
		t.Fatalf("interval not closed: %+v", all[0])
	}
}
