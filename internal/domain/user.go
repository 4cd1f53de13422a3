package domain

import (
	"time"

	"github.com/google/uuid"
)

// User holds the customer contact fields this core reads and backfills.
// Identity provisioning lives outside this service.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Phone     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContactUpdate holds the optional contact fields of a user backfill.
// Nil fields are left untouched.
type ContactUpdate struct {
	Name  *string
	Phone *string
}

// Address is a customer's saved shipping address, owned by its user.
type Address struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Street     string
	City       string
	PostalCode string
	Country    string
	CreatedAt  time.Time
}
