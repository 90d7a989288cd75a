package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/minhaz000/prime-motors-server/internal/models"
)

// Connect opens a Mongo client and pings it so a bad DB_URL fails at
// startup instead of on the first request.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client, nil
}

// NewMongo builds a Store over the named database.
func NewMongo(client *mongo.Client, dbName string) *Store {
	db := client.Database(dbName)
	return &Store{
		Users:      &mongoUsers{col: db.Collection("users")},
		Products:   &mongoProducts{col: db.Collection("products")},
		Bookings:   &mongoBookings{col: db.Collection("bookings")},
		Categories: &mongoCategories{col: db.Collection("categories")},
	}
}

func findAll[T any](ctx context.Context, col *mongo.Collection, filter bson.M) ([]T, error) {
	cur, err := col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []T{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

type mongoUsers struct {
	col *mongo.Collection
}

func (s *mongoUsers) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	return u, err
}

func (s *mongoUsers) Upsert(ctx context.Context, u models.User) error {
	u.ID = primitive.NilObjectID
	_, err := s.col.UpdateOne(ctx,
		bson.M{"email": u.Email},
		bson.M{"$set": u},
		options.Update().SetUpsert(true),
	)
	return err
}

func (s *mongoUsers) MergeByEmail(ctx context.Context, email string, fields map[string]any) (int64, error) {
	res, err := s.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (s *mongoUsers) ListBuyers(ctx context.Context) ([]models.User, error) {
	filter := bson.M{"$and": bson.A{
		bson.M{"role": bson.M{"$ne": "admin"}},
		bson.M{"role": bson.M{"$ne": "seller"}},
	}}
	return findAll[models.User](ctx, s.col, filter)
}

func (s *mongoUsers) ListSellers(ctx context.Context) ([]models.User, error) {
	return findAll[models.User](ctx, s.col, bson.M{"role": "seller"})
}

func (s *mongoUsers) SetVerified(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"verified": true}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (s *mongoUsers) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

type mongoProducts struct {
	col *mongo.Collection
}

func (s *mongoProducts) ListAll(ctx context.Context) ([]models.Product, error) {
	return findAll[models.Product](ctx, s.col, bson.M{})
}

func (s *mongoProducts) ListByOwner(ctx context.Context, email string) ([]models.Product, error) {
	return findAll[models.Product](ctx, s.col, bson.M{"posted_by.email": email})
}

func (s *mongoProducts) ListByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return findAll[models.Product](ctx, s.col, bson.M{"category": category})
}

func (s *mongoProducts) ListAdvertised(ctx context.Context) ([]models.Product, error) {
	filter := bson.M{"$and": bson.A{
		bson.M{"advertise": bson.M{"$eq": true}},
		bson.M{"booked": bson.M{"$ne": true}},
	}}
	return findAll[models.Product](ctx, s.col, filter)
}

func (s *mongoProducts) FindByID(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	var p models.Product
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrNotFound
	}
	return p, err
}

func (s *mongoProducts) Insert(ctx context.Context, p models.Product) (primitive.ObjectID, error) {
	res, err := s.col.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert product: unexpected id type %T", res.InsertedID)
	}
	return id, nil
}

func (s *mongoProducts) SetBooked(ctx context.Context, id primitive.ObjectID, booked bool) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"booked": booked}})
	return err
}

func (s *mongoProducts) SetAdvertised(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"advertise": true}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (s *mongoProducts) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

type mongoBookings struct {
	col *mongo.Collection
}

func (s *mongoBookings) ListByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return findAll[models.Booking](ctx, s.col, bson.M{"email": email})
}

func (s *mongoBookings) Insert(ctx context.Context, b models.Booking) (primitive.ObjectID, error) {
	res, err := s.col.InsertOne(ctx, b)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert booking: unexpected id type %T", res.InsertedID)
	}
	return id, nil
}

type mongoCategories struct {
	col *mongo.Collection
}

func (s *mongoCategories) ListAll(ctx context.Context) ([]models.Category, error) {
	return findAll[models.Category](ctx, s.col, bson.M{})
}
