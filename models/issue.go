package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IssueCategory enum
type IssueCategory string

const (
	Road        IssueCategory = "Road"
	Water       IssueCategory = "Water"
	Sanitation  IssueCategory = "Sanitation"
	Electricity IssueCategory = "Electricity"
	Other       IssueCategory = "Other"
)

// IssueStatus enum
type IssueStatus string

const (
	Reported     IssueStatus = "reported"
	Acknowledged IssueStatus = "acknowledged"
	InProgress   IssueStatus = "in-progress"
	Resolved     IssueStatus = "resolved"
)

// ValidCategory reports whether the category is one of the known civic categories.
func ValidCategory(category string) bool {
	switch IssueCategory(category) {
	case Road, Water, Sanitation, Electricity, Other:
		return true
	}
	return false
}

// ValidStatus reports whether the status is part of the issue lifecycle.
func ValidStatus(status string) bool {
	switch IssueStatus(status) {
	case Reported, Acknowledged, InProgress, Resolved:
		return true
	}
	return false
}

var statusRank = map[IssueStatus]int{
	Reported:     0,
	Acknowledged: 1,
	InProgress:   2,
	Resolved:     3,
}

// CanTransition reports whether an admin may move an issue from one status to
// another. The lifecycle only moves forward, except resolved issues may be
// re-opened to in-progress when field work turns out to be incomplete.
func CanTransition(from, to IssueStatus) bool {
	if from == to {
		return false
	}
	if from == Resolved && to == InProgress {
		return true
	}
	return statusRank[to] > statusRank[from]
}

// Location is the reported place of an issue: a human-readable address plus
// the device geolocation fix, when one was captured.
type Location struct {
	Address   string   `bson:"address" json:"address"`
	Latitude  *float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude *float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`
}

// Issue represents a civic issue reported by a citizen
type Issue struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title       string              `bson:"title" json:"title"`
	Description string              `bson:"description" json:"description"`
	Category    IssueCategory       `bson:"category" json:"category"`
	Location    Location            `bson:"location" json:"location"`
	ImageURL    *string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Status      IssueStatus         `bson:"status" json:"status"`
	ReportedBy  primitive.ObjectID  `bson:"reportedBy" json:"reportedBy"`
	AssignedTo  *primitive.ObjectID `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	ReportedAt  time.Time           `bson:"reportedAt" json:"reportedAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// EnsureIssueIndexes creates the indexes the list and map queries rely on
func EnsureIssueIndexes(collection *mongo.Collection) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "reportedAt", Value: -1}}},
		{Keys: bson.D{{Key: "reportedBy", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "status", Value: 1}}},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}

// EnsureUserIndex creates a unique index on user email
func EnsureUserIndex(collection *mongo.Collection) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	_, err := collection.Indexes().CreateOne(ctx, indexModel)
	return err
}
