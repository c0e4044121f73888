// README: PostgreSQL store tests; skipped unless TRUCKER_TEST_DSN is set.
package booking

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Harshdalal22/ssktrucker/internal/types"
)

func TestPGStoreLifecycle(t *testing.T) {
	svc := NewService(setupPGStore(t))
	ctx := context.Background()

	b := mustCreateBooking(t, svc, "cust_pg", 150)
	assertStatus(t, svc, b.ID, StatusBidding)

	bid := mustSubmitBid(t, svc, b.ID, "drv_pg", 160)
	got := mustGet(t, svc, b.ID)
	if len(got.Bids) != 1 || got.Bids[0].ID != bid.ID {
		t.Fatalf("bid not persisted: %+v", got.Bids)
	}

	accepted, err := svc.AcceptBid(ctx, AcceptBidCommand{BookingID: b.ID, BidID: bid.ID})
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if accepted.AcceptedBidID == nil || *accepted.AcceptedBidID != bid.ID {
		t.Fatalf("acceptedBidID = %v, want %s", accepted.AcceptedBidID, bid.ID)
	}

	if _, err := svc.SubmitBid(ctx, validBid(b.ID, "drv_late", 120)); err != ErrInvalidState {
		t.Fatalf("bid after accept: expected ErrInvalidState, got %v", err)
	}
	if _, err := svc.AcceptBid(ctx, AcceptBidCommand{BookingID: b.ID, BidID: bid.ID}); err != ErrInvalidState {
		t.Fatalf("second accept: expected ErrInvalidState, got %v", err)
	}

	if _, err := svc.Start(ctx, b.ID, "drv_pg"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := svc.Complete(ctx, b.ID, "drv_pg"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	assertStatus(t, svc, b.ID, StatusCompleted)
}

func TestPGStoreBidOrdering(t *testing.T) {
	svc := NewService(setupPGStore(t))

	b := mustCreateBooking(t, svc, "cust_pg_order", 500)
	var want []types.ID
	for i := 0; i < 5; i++ {
		bid := mustSubmitBid(t, svc, b.ID, types.ID("drv_"+string(rune('a'+i))), int64(400+i))
		want = append(want, bid.ID)
	}

	got := mustGet(t, svc, b.ID)
	if len(got.Bids) != len(want) {
		t.Fatalf("bids = %d, want %d", len(got.Bids), len(want))
	}
	for i, id := range want {
		if got.Bids[i].ID != id {
			t.Fatalf("bids[%d] = %s, want %s (arrival order)", i, got.Bids[i].ID, id)
		}
	}
}

func TestPGStoreUnknownBooking(t *testing.T) {
	svc := NewService(setupPGStore(t))
	ctx := context.Background()

	if _, err := svc.SubmitBid(ctx, validBid(types.NewID(), "drv", 100)); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func setupPGStore(t *testing.T) *PGStore {
	t.Helper()

	dsn := os.Getenv("TRUCKER_TEST_DSN")
	if dsn == "" {
		t.Skip("TRUCKER_TEST_DSN not set; skipping DB-backed store tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := applyMigration(ctx, db); err != nil {
		t.Fatalf("apply migration: %v", err)
	}
	if _, err := db.Exec(ctx, "TRUNCATE TABLE booking_state_events, bids, bookings"); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
	return NewPGStore(db)
}

func applyMigration(ctx context.Context, db *pgxpool.Pool) error {
	_, self, _, _ := runtime.Caller(0)
	path := filepath.Join(filepath.Dir(self), "..", "..", "..", "migrations", "0001_init.sql")
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	for _, stmt := range strings.Split(string(content), ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
