package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"credit-score/internal/domain"
)

func record(id string, score int) domain.QueryRecord {
	return domain.QueryRecord{
		QueryID:    id,
		ClientName: "Cliente " + id,
		Score:      score,
		RiskLevel:  domain.RiskMedium,
		QueriedAt:  time.Now().UTC(),
	}
}

func TestMemoryHistory_RecentIsMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryHistoryRepository()

	if err := repo.Append(ctx, record("r1", 600)); err != nil {
		t.Fatalf("append r1: %v", err)
	}
	if err := repo.Append(ctx, record("r2", 700)); err != nil {
		t.Fatalf("append r2: %v", err)
	}

	records, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].QueryID != "r2" || records[1].QueryID != "r1" {
		t.Fatalf("expected [r2 r1], got [%s %s]", records[0].QueryID, records[1].QueryID)
	}
}

func TestMemoryHistory_RecentNeverExceedsAppended(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryHistoryRepository()

	for i := 0; i < 3; i++ {
		if err := repo.Append(ctx, record(fmt.Sprintf("r%d", i), 500)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	records, err := repo.Recent(ctx, 100)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected all 3 records, got %d", len(records))
	}

	records, err = repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected limit to cap results at 2, got %d", len(records))
	}
}

func TestMemoryHistory_RecentIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryHistoryRepository()

	for i := 0; i < 5; i++ {
		if err := repo.Append(ctx, record(fmt.Sprintf("r%d", i), 500+i)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	first, err := repo.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("first recent: %v", err)
	}
	second, err := repo.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("second recent: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("read lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("record %d differs between reads", i)
		}
	}
}

func TestMemoryHistory_RecentReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryHistoryRepository()

	if err := repo.Append(ctx, record("r1", 600)); err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := repo.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	records[0].Score = -1

	again, err := repo.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if again[0].Score != 600 {
		t.Fatalf("stored record mutated through returned slice: %d", again[0].Score)
	}
}

func TestMemoryHistory_EmptyAndReset(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryHistoryRepository()

	records, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty history, got %d records", len(records))
	}

	if err := repo.Append(ctx, record("r1", 500)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	total, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected empty history after reset, got %d", total)
	}
}

func TestMemoryHistory_ConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryHistoryRepository()

	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				_ = repo.Append(ctx, record(fmt.Sprintf("w%d-%d", i, j), 500))
			}
		}(i)
	}
	wg.Wait()

	total, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != writers*10 {
		t.Fatalf("expected %d records, got %d", writers*10, total)
	}
}
