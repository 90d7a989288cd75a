package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostedBy identifies the seller embedded in a listing.
type PostedBy struct {
	Name     string `bson:"name"     json:"name"`
	Email    string `bson:"email"    json:"email"`
	Verified bool   `bson:"verified" json:"verified"`
}

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"       json:"id,omitempty"`
	Email    string             `bson:"email"               json:"email"`
	Name     string             `bson:"name,omitempty"      json:"name,omitempty"`
	PhotoURL string             `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	Role     string             `bson:"role,omitempty"      json:"role,omitempty"`
	Verified bool               `bson:"verified,omitempty"  json:"verified,omitempty"`
	Phone    string             `bson:"phone,omitempty"     json:"phone,omitempty"`
	Location string             `bson:"location,omitempty"  json:"location,omitempty"`
}

type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"            json:"id,omitempty"`
	CategoryID    string             `bson:"category"                 json:"category"`
	Name          string             `bson:"name"                     json:"name"`
	Image         string             `bson:"image,omitempty"          json:"image,omitempty"`
	Location      string             `bson:"location,omitempty"       json:"location,omitempty"`
	ResalePrice   float64            `bson:"resale_price"             json:"resale_price"`
	OriginalPrice float64            `bson:"original_price,omitempty" json:"original_price,omitempty"`
	YearsOfUse    int                `bson:"years_of_use,omitempty"   json:"years_of_use,omitempty"`
	PostedAt      string             `bson:"posted_at,omitempty"      json:"posted_at,omitempty"`
	Description   string             `bson:"description,omitempty"    json:"description,omitempty"`
	Phone         string             `bson:"phone,omitempty"          json:"phone,omitempty"`
	PostedBy      PostedBy           `bson:"posted_by"                json:"posted_by"`
	Booked        bool               `bson:"booked,omitempty"         json:"booked,omitempty"`
	Advertise     bool               `bson:"advertise,omitempty"      json:"advertise,omitempty"`
}

type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"              json:"id,omitempty"`
	ProductID       string             `bson:"product_id"                 json:"product_id"`
	ProductName     string             `bson:"product_name,omitempty"     json:"product_name,omitempty"`
	Email           string             `bson:"email"                      json:"email"`
	Name            string             `bson:"name,omitempty"             json:"name,omitempty"`
	Phone           string             `bson:"phone,omitempty"            json:"phone,omitempty"`
	MeetingLocation string             `bson:"meeting_location,omitempty" json:"meeting_location,omitempty"`
	Price           float64            `bson:"price,omitempty"            json:"price,omitempty"`
}

type Category struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name string             `bson:"name"          json:"name"`
}
