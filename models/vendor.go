package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Vendor represents a third-party service provider assignable to issues
type Vendor struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	ContactEmail string             `bson:"contactEmail" json:"contactEmail"`
	ContactPhone string             `bson:"contactPhone,omitempty" json:"contactPhone,omitempty"`
	Specialities []IssueCategory    `bson:"specialities" json:"specialities"`
	Rating       float64            `bson:"rating" json:"rating"`
	TotalJobs    int64              `bson:"totalJobs" json:"totalJobs"`
	BaseQuote    float64            `bson:"baseQuote" json:"baseQuote"`
	Verified     bool               `bson:"verified" json:"verified"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// HandlesCategory reports whether the vendor lists the category as a speciality.
func (v *Vendor) HandlesCategory(category IssueCategory) bool {
	for _, s := range v.Specialities {
		if s == category {
			return true
		}
	}
	return false
}

// Assignable reports whether the vendor can be assigned an issue in the category.
// Only verified vendors take assignments.
func (v *Vendor) Assignable(category IssueCategory) bool {
	return v.Verified && v.HandlesCategory(category)
}

// EnsureVendorIndex creates a unique index on vendor name
func EnsureVendorIndex(collection *mongo.Collection) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	_, err := collection.Indexes().CreateOne(ctx, indexModel)
	return err
}
