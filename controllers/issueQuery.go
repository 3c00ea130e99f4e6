package controllers

import (
	"vikasit-jharkhand-be/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BuildIssueFilter translates list query parameters into a Mongo filter.
// "all" behaves the same as an absent filter so the frontend's default
// dropdown value works unchanged.
func BuildIssueFilter(category, status, search string) bson.M {
	filter := bson.M{}

	if category != "" && category != "all" {
		filter["category"] = category
	}

	if status != "" && status != "all" {
		filter["status"] = status
	}

	if search != "" {
		filter["$or"] = []bson.M{
			{"title": bson.M{"$regex": search, "$options": "i"}},
			{"description": bson.M{"$regex": search, "$options": "i"}},
		}
	}

	return filter
}

// IssueSortOptions maps a sort keyword to a Mongo sort document. Unknown
// keywords fall back to newest-first.
func IssueSortOptions(sort string) bson.D {
	switch sort {
	case "oldest":
		return bson.D{{Key: "reportedAt", Value: 1}}
	case "newest":
		fallthrough
	default:
		return bson.D{{Key: "reportedAt", Value: -1}}
	}
}

// MergeCoordinates applies an edit's latitude/longitude on top of the stored
// pair and reports whether the result is still either a full pair or no
// coordinates at all. A half-pair never reaches the database.
func MergeCoordinates(stored models.Location, lat, lng *float64) (*float64, *float64, bool) {
	mergedLat := stored.Latitude
	if lat != nil {
		mergedLat = lat
	}
	mergedLng := stored.Longitude
	if lng != nil {
		mergedLng = lng
	}
	return mergedLat, mergedLng, (mergedLat == nil) == (mergedLng == nil)
}

// NormalizePagination clamps page and limit to sane bounds.
func NormalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}
