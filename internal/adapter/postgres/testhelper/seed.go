package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lumenprint/calendarshop-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with generated contact data. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.Name, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedAddress creates a saved shipping address for the given user.
func SeedAddress(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Address {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	addr := domain.Address{
		ID:         uuid.New(),
		UserID:     userID,
		Street:     "Main St " + suffix,
		City:       "Testville",
		PostalCode: "12345",
		Country:    "DE",
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO addresses (id, user_id, street, city, postal_code, country, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		addr.ID, addr.UserID, addr.Street, addr.City, addr.PostalCode, addr.Country, addr.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAddress insert: %v", err)
	}

	return addr
}

// SeedProduct creates an active product with two options. Returns the product
// and its options.
func SeedProduct(t *testing.T, pool *pgxpool.Pool) (domain.Product, []domain.ProductOption) {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	product := domain.Product{
		ID:        uuid.New(),
		Name:      "Wall Calendar " + suffix,
		BasePrice: 1990,
		Active:    true,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO products (id, name, base_price, active, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		product.ID, product.Name, product.BasePrice, product.Active, product.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProduct insert product: %v", err)
	}

	options := []domain.ProductOption{
		{ID: uuid.New(), ProductID: product.ID, Name: "format", Value: "A3", PriceModifier: 500},
		{ID: uuid.New(), ProductID: product.ID, Name: "paper", Value: "matte", PriceModifier: 0},
	}
	for i, opt := range options {
		_, err := pool.Exec(ctx,
			`INSERT INTO product_options (id, product_id, name, value, price_modifier)
			 VALUES ($1, $2, $3, $4, $5)`,
			opt.ID, opt.ProductID, opt.Name, opt.Value, opt.PriceModifier,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedProduct insert option[%d]: %v", i, err)
		}
	}

	return product, options
}

// SeedTemplate creates an active template for the product with slotCount
// editable IMAGE slots followed by one non-editable TEXT slot.
func SeedTemplate(t *testing.T, pool *pgxpool.Pool, productID uuid.UUID, slotCount int) (domain.Template, []domain.TemplateSlot) {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	tmpl := domain.Template{
		ID:        uuid.New(),
		ProductID: productID,
		Name:      "Template " + suffix,
		Active:    true,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO templates (id, product_id, name, active, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		tmpl.ID, tmpl.ProductID, tmpl.Name, tmpl.Active, tmpl.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTemplate insert template: %v", err)
	}

	slots := make([]domain.TemplateSlot, 0, slotCount+1)
	for i := 0; i < slotCount; i++ {
		slots = append(slots, domain.TemplateSlot{
			ID:          uuid.New(),
			TemplateID:  tmpl.ID,
			SlotIndex:   i,
			ContentType: domain.SlotContentImage,
			Editable:    true,
			MaxImages:   1,
			AspectRatio: 1.414,
		})
	}
	slots = append(slots, domain.TemplateSlot{
		ID:          uuid.New(),
		TemplateID:  tmpl.ID,
		SlotIndex:   slotCount,
		ContentType: domain.SlotContentText,
		Editable:    false,
		MaxImages:   0,
		AspectRatio: 1,
	})

	for i, s := range slots {
		_, err := pool.Exec(ctx,
			`INSERT INTO template_slots (id, template_id, slot_index, content_type, editable, max_images, aspect_ratio)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			s.ID, s.TemplateID, s.SlotIndex, string(s.ContentType), s.Editable, s.MaxImages, s.AspectRatio,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedTemplate insert slot[%d]: %v", i, err)
		}
	}

	return tmpl, slots
}

// SeedImage creates an image asset owned by the given user.
func SeedImage(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.ImageAsset {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	img := domain.ImageAsset{
		ID:        uuid.New(),
		UserID:    userID,
		StorageID: "store-" + suffix,
		SecureURL: "https://cdn.example.com/" + suffix + ".jpg",
		Width:     2400,
		Height:    1600,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO image_assets (id, user_id, storage_id, secure_url, width, height, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		img.ID, img.UserID, img.StorageID, img.SecureURL, img.Width, img.Height, img.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedImage insert: %v", err)
	}

	return img
}

// SeedDraft creates a draft in the given state with slots materialized from
// the template slots.
func SeedDraft(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, tmpl domain.Template, tmplSlots []domain.TemplateSlot, state domain.DraftState) domain.Draft {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	draft := domain.Draft{
		ID:         uuid.New(),
		UserID:     userID,
		ProductID:  tmpl.ProductID,
		TemplateID: tmpl.ID,
		State:      state,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO drafts (id, user_id, product_id, template_id, state, title, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`,
		draft.ID, draft.UserID, draft.ProductID, draft.TemplateID, string(draft.State), draft.Title, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDraft insert draft: %v", err)
	}

	for i, ts := range tmplSlots {
		_, err := pool.Exec(ctx,
			`INSERT INTO draft_slots (id, draft_id, slot_index, content_type, transform, image_id, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, NULL, NULL, $5, $5)`,
			uuid.New(), draft.ID, ts.SlotIndex, string(ts.ContentType), now,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedDraft insert slot[%d]: %v", i, err)
		}
	}

	return draft
}

// AssignSlotImage links an image to the draft slot at slotIndex.
func AssignSlotImage(t *testing.T, pool *pgxpool.Pool, draftID uuid.UUID, slotIndex int, imageID uuid.UUID) {
	t.Helper()

	tag, err := pool.Exec(context.Background(),
		`UPDATE draft_slots SET image_id = $3 WHERE draft_id = $1 AND slot_index = $2`,
		draftID, slotIndex, imageID,
	)
	if err != nil {
		t.Fatalf("testhelper: AssignSlotImage: %v", err)
	}
	if tag.RowsAffected() == 0 {
		t.Fatalf("testhelper: AssignSlotImage: no slot %d on draft %s", slotIndex, draftID)
	}
}

// SeedCart creates an empty cart for the user.
func SeedCart(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Cart {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	cart := domain.Cart{ID: uuid.New(), UserID: userID, CreatedAt: now, UpdatedAt: now}

	_, err := pool.Exec(ctx,
		`INSERT INTO carts (id, user_id, created_at, updated_at) VALUES ($1, $2, $3, $3)`,
		cart.ID, cart.UserID, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCart insert: %v", err)
	}

	return cart
}

// SeedCartItem adds a line to the cart with frozen price and options.
func SeedCartItem(t *testing.T, pool *pgxpool.Pool, cartID, draftID, productID uuid.UUID, quantity int, price int64, options []domain.OptionSnapshot) domain.CartItem {
	t.Helper()
	ctx := context.Background()

	if options == nil {
		options = []domain.OptionSnapshot{}
	}
	optJSON, err := json.Marshal(options)
	if err != nil {
		t.Fatalf("testhelper: SeedCartItem marshal options: %v", err)
	}

	item := domain.CartItem{
		ID:        uuid.New(),
		CartID:    cartID,
		DraftID:   draftID,
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
		Options:   options,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO cart_items (id, cart_id, draft_id, product_id, quantity, price, options, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		item.ID, item.CartID, item.DraftID, item.ProductID, item.Quantity, item.Price, optJSON, item.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCartItem insert: %v", err)
	}

	return item
}
