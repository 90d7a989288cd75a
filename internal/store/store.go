// Package store gives handlers an explicitly constructed document-store
// handle. The Mongo implementation backs production; the memory
// implementation substitutes it in tests.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/minhaz000/prime-motors-server/internal/models"
)

// ErrNotFound reports that a referenced document does not exist.
var ErrNotFound = errors.New("store: not found")

type Users interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	// Upsert replaces the stored fields of the user keyed by email,
	// inserting when absent.
	Upsert(ctx context.Context, u models.User) error
	// MergeByEmail applies a partial update to the user keyed by email
	// and returns the number of matched documents.
	MergeByEmail(ctx context.Context, email string, fields map[string]any) (int64, error)
	ListBuyers(ctx context.Context) ([]models.User, error)
	ListSellers(ctx context.Context) ([]models.User, error)
	SetVerified(ctx context.Context, id primitive.ObjectID) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type Products interface {
	ListAll(ctx context.Context) ([]models.Product, error)
	ListByOwner(ctx context.Context, email string) ([]models.Product, error)
	ListByCategory(ctx context.Context, category string) ([]models.Product, error)
	// ListAdvertised returns products with advertise set and booked not set.
	ListAdvertised(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Product, error)
	Insert(ctx context.Context, p models.Product) (primitive.ObjectID, error)
	SetBooked(ctx context.Context, id primitive.ObjectID, booked bool) error
	SetAdvertised(ctx context.Context, id primitive.ObjectID) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type Bookings interface {
	ListByEmail(ctx context.Context, email string) ([]models.Booking, error)
	Insert(ctx context.Context, b models.Booking) (primitive.ObjectID, error)
}

type Categories interface {
	ListAll(ctx context.Context) ([]models.Category, error)
}

// Store bundles the per-collection handles that handlers depend on.
type Store struct {
	Users      Users
	Products   Products
	Bookings   Bookings
	Categories Categories
}
