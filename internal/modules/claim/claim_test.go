// README: Claim store tests (duplicate arbitration, processing).
package claim

import (
	"bufio"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"foodbridge/internal/modules/donation"
	"foodbridge/internal/types"
)

func TestCreateAndDuplicate(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	c, err := store.Create(ctx, "don-1", "ngo-1")
	if err != nil {
		t.Fatalf("create claim: %v", err)
	}
	if c.Status != StatusPending {
		t.Fatalf("new claim status = %s, want pending", c.Status)
	}

	if _, err := store.Create(ctx, "don-1", "ngo-1"); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("repeat claim: got %v, want ErrDuplicate", err)
	}

	// A different NGO may still record a claim for the same donation; the
	// donation lifecycle decides which one wins.
	if _, err := store.Create(ctx, "don-1", "ngo-2"); err != nil {
		t.Fatalf("second ngo claim: %v", err)
	}
	if _, err := store.Create(ctx, "don-2", "ngo-1"); err != nil {
		t.Fatalf("same ngo, other donation: %v", err)
	}
}

// A discarded claim frees the (donation, ngo) pair again and no longer
// appears in the pending queue.
func TestDeleteFreesClaimPair(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	c, err := store.Create(ctx, "don-1", "ngo-1")
	if err != nil {
		t.Fatalf("create claim: %v", err)
	}
	if err := store.Delete(ctx, c.ID); err != nil {
		t.Fatalf("delete claim: %v", err)
	}

	pending, err := store.ListPending(ctx)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("pending after delete = %d, want 0", len(pending))
	}

	if _, err := store.Create(ctx, "don-1", "ngo-1"); err != nil {
		t.Fatalf("re-claim after delete: %v", err)
	}
}

func TestConcurrentDuplicateCreate(t *testing.T) {
	store := setupTestStore(t)
	svc := NewService(store)
	ctx := context.Background()

	const attempts = 6
	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(ctx, "don-race", "ngo-1")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	success := 0
	for err := range errs {
		if err == nil {
			success++
			continue
		}
		if !errors.Is(err, donation.ErrAlreadyClaimed) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if success != 1 {
		t.Fatalf("expected exactly 1 successful claim, got %d", success)
	}
}

func TestProcessClaim(t *testing.T) {
	store := setupTestStore(t)
	svc := NewService(store)
	ctx := context.Background()

	created, err := store.Create(ctx, "don-3", "ngo-3")
	if err != nil {
		t.Fatalf("create claim: %v", err)
	}

	admin := types.Principal{ID: "admin-1", Role: types.RoleAdmin}
	processed, err := svc.Process(ctx, ProcessCommand{ClaimID: created.ID, Actor: admin, Approve: true, Notes: "verified pickup capacity"})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if processed.Status != StatusApproved {
		t.Fatalf("status = %s, want approved", processed.Status)
	}
	if processed.ProcessedBy == nil || *processed.ProcessedBy != "admin-1" {
		t.Errorf("processedBy = %v", processed.ProcessedBy)
	}
	if processed.Notes != "verified pickup capacity" {
		t.Errorf("notes = %q", processed.Notes)
	}

	if _, err := svc.Process(ctx, ProcessCommand{ClaimID: created.ID, Actor: admin, Approve: false}); !errors.Is(err, ErrAlreadyProcessed) {
		t.Errorf("re-process: got %v, want ErrAlreadyProcessed", err)
	}

	if _, err := svc.Process(ctx, ProcessCommand{ClaimID: "missing", Actor: admin, Approve: true}); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing claim: got %v, want ErrNotFound", err)
	}
}

func TestListPendingAndByNgo(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	first, err := store.Create(ctx, "don-a", "ngo-list")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := store.Create(ctx, "don-b", "ngo-list"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := store.SetStatus(ctx, first.ID, StatusRejected, "admin-1", ""); err != nil {
		t.Fatalf("set status: %v", err)
	}

	pending, err := store.ListPending(ctx)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("pending count = %d, want 1", len(pending))
	}

	mine, err := store.ListByNgo(ctx, "ngo-list")
	if err != nil {
		t.Fatalf("list by ngo: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("ngo claim count = %d, want 2", len(mine))
	}

	ids, err := store.DonationIDs(ctx, "ngo-list")
	if err != nil {
		t.Fatalf("donation ids: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("donation id count = %d, want 2", len(ids))
	}
}

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv("FOODBRIDGE_TEST_DSN")
	if dsn == "" {
		t.Skip("FOODBRIDGE_TEST_DSN not set; skipping DB-backed tests")
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
	if _, err := db.Exec(ctx, "TRUNCATE TABLE claims"); err != nil {
		t.Fatalf("truncate claims: %v", err)
	}
	return NewStore(db)
}

func applyMigration(ctx context.Context, db *pgxpool.Pool) error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	for i := 0; i < 6; i++ {
		if _, statErr := os.Stat(filepath.Join(dir, "go.mod")); statErr == nil {
			break
		}
		dir = filepath.Dir(dir)
	}
	content, err := os.ReadFile(filepath.Join(dir, "migrations", "0001_init.sql"))
	if err != nil {
		return err
	}

	var b strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(string(content)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		b.WriteString(scanner.Text())
		b.WriteString("\n")
	}
	for _, stmt := range strings.Split(b.String(), ";") {
		if stmt = strings.TrimSpace(stmt); stmt == "" {
			continue
		}
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
