package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/minhaz000/prime-motors-server/internal/models"
)

// NewMemory builds a Store backed by in-process maps. Tests use it in
// place of Mongo.
func NewMemory() *Store {
	m := &memory{
		users:    map[primitive.ObjectID]models.User{},
		products: map[primitive.ObjectID]models.Product{},
		bookings: map[primitive.ObjectID]models.Booking{},
	}
	return &Store{
		Users:      (*memUsers)(m),
		Products:   (*memProducts)(m),
		Bookings:   (*memBookings)(m),
		Categories: (*memCategories)(m),
	}
}

type memory struct {
	mu         sync.Mutex
	users      map[primitive.ObjectID]models.User
	products   map[primitive.ObjectID]models.Product
	bookings   map[primitive.ObjectID]models.Booking
	categories []models.Category
}

// SeedCategories loads the read-only category collection of a memory
// store. It panics when called on a Mongo-backed store.
func SeedCategories(s *Store, cats ...models.Category) {
	m := (*memory)(s.Categories.(*memCategories))
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range cats {
		if c.ID.IsZero() {
			c.ID = primitive.NewObjectID()
		}
		m.categories = append(m.categories, c)
	}
}

type memUsers memory

func (s *memUsers) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *memUsers) Upsert(_ context.Context, u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, existing := range s.users {
		if existing.Email == u.Email {
			s.users[id] = setUserFields(existing, u)
			return nil
		}
	}
	u.ID = primitive.NewObjectID()
	s.users[u.ID] = u
	return nil
}

// setUserFields applies the zero-skipping update Mongo performs when a
// user document marshalled with omitempty tags is $set onto an
// existing one: zero-valued fields are absent from the update and stay
// untouched.
func setUserFields(dst, u models.User) models.User {
	if u.Name != "" {
		dst.Name = u.Name
	}
	if u.PhotoURL != "" {
		dst.PhotoURL = u.PhotoURL
	}
	if u.Role != "" {
		dst.Role = u.Role
	}
	if u.Verified {
		dst.Verified = true
	}
	if u.Phone != "" {
		dst.Phone = u.Phone
	}
	if u.Location != "" {
		dst.Location = u.Location
	}
	return dst
}

func (s *memUsers) MergeByEmail(_ context.Context, email string, fields map[string]any) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, u := range s.users {
		if u.Email != email {
			continue
		}
		for k, v := range fields {
			switch k {
			case "name":
				u.Name, _ = v.(string)
			case "photo_url":
				u.PhotoURL, _ = v.(string)
			case "role":
				u.Role, _ = v.(string)
			case "phone":
				u.Phone, _ = v.(string)
			case "location":
				u.Location, _ = v.(string)
			case "verified":
				u.Verified, _ = v.(bool)
			}
		}
		s.users[id] = u
		return 1, nil
	}
	return 0, nil
}

func (s *memUsers) ListBuyers(_ context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.User{}
	for _, u := range s.users {
		if u.Role != "admin" && u.Role != "seller" {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *memUsers) ListSellers(_ context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.User{}
	for _, u := range s.users {
		if u.Role == "seller" {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *memUsers) SetVerified(_ context.Context, id primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return 0, nil
	}
	u.Verified = true
	s.users[id] = u
	return 1, nil
}

func (s *memUsers) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return 0, nil
	}
	delete(s.users, id)
	return 1, nil
}

type memProducts memory

func (s *memProducts) list(keep func(models.Product) bool) []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Product{}
	for _, p := range s.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (s *memProducts) ListAll(_ context.Context) ([]models.Product, error) {
	return s.list(func(models.Product) bool { return true }), nil
}

func (s *memProducts) ListByOwner(_ context.Context, email string) ([]models.Product, error) {
	return s.list(func(p models.Product) bool { return p.PostedBy.Email == email }), nil
}

func (s *memProducts) ListByCategory(_ context.Context, category string) ([]models.Product, error) {
	return s.list(func(p models.Product) bool { return p.CategoryID == category }), nil
}

func (s *memProducts) ListAdvertised(_ context.Context) ([]models.Product, error) {
	return s.list(func(p models.Product) bool { return p.Advertise && !p.Booked }), nil
}

func (s *memProducts) FindByID(_ context.Context, id primitive.ObjectID) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return p, nil
}

func (s *memProducts) Insert(_ context.Context, p models.Product) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	s.products[p.ID] = p
	return p.ID, nil
}

func (s *memProducts) SetBooked(_ context.Context, id primitive.ObjectID, booked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil
	}
	p.Booked = booked
	s.products[id] = p
	return nil
}

func (s *memProducts) SetAdvertised(_ context.Context, id primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return 0, nil
	}
	p.Advertise = true
	s.products[id] = p
	return 1, nil
}

func (s *memProducts) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return 0, nil
	}
	delete(s.products, id)
	return 1, nil
}

type memBookings memory

func (s *memBookings) ListByEmail(_ context.Context, email string) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Booking{}
	for _, b := range s.bookings {
		if b.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *memBookings) Insert(_ context.Context, b models.Booking) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	s.bookings[b.ID] = b
	return b.ID, nil
}

type memCategories memory

func (s *memCategories) ListAll(_ context.Context) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out, nil
}
