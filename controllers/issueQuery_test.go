package controllers

import (
	"testing"

	"vikasit-jharkhand-be/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func ptr(f float64) *float64 { return &f }

func TestBuildIssueFilter_Empty(t *testing.T) {
	filter := BuildIssueFilter("", "", "")
	assert.Empty(t, filter)
}

func TestBuildIssueFilter_AllKeyword(t *testing.T) {
	filter := BuildIssueFilter("all", "all", "")
	assert.Empty(t, filter)
}

func TestBuildIssueFilter_CategoryAndStatus(t *testing.T) {
	filter := BuildIssueFilter("Road", "reported", "")
	assert.Equal(t, "Road", filter["category"])
	assert.Equal(t, "reported", filter["status"])
	assert.NotContains(t, filter, "$or")
}

func TestBuildIssueFilter_Search(t *testing.T) {
	filter := BuildIssueFilter("", "", "streetlight")

	or, ok := filter["$or"].([]bson.M)
	assert.True(t, ok)
	assert.Len(t, or, 2)
	assert.Equal(t, bson.M{"$regex": "streetlight", "$options": "i"}, or[0]["title"])
	assert.Equal(t, bson.M{"$regex": "streetlight", "$options": "i"}, or[1]["description"])
}

func TestIssueSortOptions(t *testing.T) {
	newest := IssueSortOptions("newest")
	assert.Equal(t, bson.D{{Key: "reportedAt", Value: -1}}, newest)

	oldest := IssueSortOptions("oldest")
	assert.Equal(t, bson.D{{Key: "reportedAt", Value: 1}}, oldest)

	// unknown keywords fall back to newest
	fallback := IssueSortOptions("popular")
	assert.Equal(t, newest, fallback)
}

func TestMergeCoordinates_LatitudeAloneOnUntaggedIssue(t *testing.T) {
	// an issue reported without coordinates must not end up with only one of them
	stored := models.Location{Address: "Main Road, Ranchi"}

	_, _, ok := MergeCoordinates(stored, ptr(23.3), nil)
	assert.False(t, ok)

	_, _, ok = MergeCoordinates(stored, nil, ptr(85.3))
	assert.False(t, ok)
}

func TestMergeCoordinates_FullPairProvided(t *testing.T) {
	stored := models.Location{Address: "Main Road, Ranchi"}

	lat, lng, ok := MergeCoordinates(stored, ptr(23.3), ptr(85.3))
	assert.True(t, ok)
	assert.Equal(t, 23.3, *lat)
	assert.Equal(t, 85.3, *lng)
}

func TestMergeCoordinates_SingleEditOnTaggedIssue(t *testing.T) {
	// an issue that already has a pair may have one coordinate corrected
	stored := models.Location{
		Address:   "Main Road, Ranchi",
		Latitude:  ptr(23.3),
		Longitude: ptr(85.3),
	}

	lat, lng, ok := MergeCoordinates(stored, ptr(23.4), nil)
	assert.True(t, ok)
	assert.Equal(t, 23.4, *lat)
	assert.Equal(t, 85.3, *lng)

	lat, lng, ok = MergeCoordinates(stored, nil, ptr(85.4))
	assert.True(t, ok)
	assert.Equal(t, 23.3, *lat)
	assert.Equal(t, 85.4, *lng)
}

func TestNormalizePagination(t *testing.T) {
	page, limit := NormalizePagination(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	page, limit = NormalizePagination(-3, 500)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	page, limit = NormalizePagination(4, 25)
	assert.Equal(t, 4, page)
	assert.Equal(t, 25, limit)
}
