package activity_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lumenprint/calendarshop-backend/internal/adapter/postgres/activity"
	"github.com/lumenprint/calendarshop-backend/internal/adapter/postgres/testhelper"
	"github.com/lumenprint/calendarshop-backend/internal/domain"
)

func newRepo(t *testing.T) (*activity.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return activity.New(pool), pool
}

func seedOrder(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)
	c := testhelper.SeedCart(t, pool, user.ID)

	orderID := uuid.New()
	_, err := pool.Exec(ctx, `
		INSERT INTO orders (id, user_id, cart_id, payment_status, order_status, total, shipping, created_at, updated_at)
		VALUES ($1, $2, $3, 'PENDING', 'NEW', 1000, '{}', now(), now())`,
		orderID, user.ID, c.ID,
	)
	if err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return orderID
}

func TestRepo_Append_AndListByOrder(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	orderID := seedOrder(t, pool)

	first := domain.OrderActivity{
		OrderID:     orderID,
		Type:        domain.ActivityOrderPlaced,
		Description: "order placed",
		Metadata:    map[string]any{"total": float64(1000)},
		CreatedAt:   time.Now().UTC().Add(-time.Minute),
	}
	if err := repo.Append(ctx, first); err != nil {
		t.Fatalf("Append first: unexpected error: %v", err)
	}

	second := domain.OrderActivity{
		OrderID:     orderID,
		Type:        domain.ActivityPaymentStatusChanged,
		Description: "payment status changed to PAID",
	}
	if err := repo.Append(ctx, second); err != nil {
		t.Fatalf("Append second: unexpected error: %v", err)
	}

	got, err := repo.ListByOrder(ctx, orderID, 10)
	if err != nil {
		t.Fatalf("ListByOrder: unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(got))
	}

	// Newest first.
	if got[0].Type != domain.ActivityPaymentStatusChanged {
		t.Errorf("expected payment activity first, got %s", got[0].Type)
	}
	if got[1].Type != domain.ActivityOrderPlaced {
		t.Errorf("expected placement activity second, got %s", got[1].Type)
	}
	if got[1].Metadata["total"] != float64(1000) {
		t.Errorf("metadata round trip mismatch: %+v", got[1].Metadata)
	}
	if got[0].ID == uuid.Nil {
		t.Error("expected generated activity id")
	}
}

func TestRepo_ListByOrder_LimitApplies(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	orderID := seedOrder(t, pool)

	for i := 0; i < 3; i++ {
		a := domain.OrderActivity{
			OrderID:     orderID,
			Type:        domain.ActivityOrderStatusChanged,
			Description: "status changed",
		}
		if err := repo.Append(ctx, a); err != nil {
			t.Fatalf("Append: unexpected error: %v", err)
		}
	}

	got, err := repo.ListByOrder(ctx, orderID, 2)
	if err != nil {
		t.Fatalf("ListByOrder: unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected limit of 2, got %d", len(got))
	}
}
