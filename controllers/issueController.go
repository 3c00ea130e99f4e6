package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"vikasit-jharkhand-be/config"
	"vikasit-jharkhand-be/models"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const analyticsCacheKey = "issue_analytics"
const analyticsCacheTTL = 60 * time.Second

// recentIssueLimit caps the map feed at the number of pins the public
// dashboard map renders at once.
const recentIssueLimit = 19

// CreateIssue handles the creation of a new issue by a citizen
func CreateIssue(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	reportedByID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var input struct {
		Title       string   `json:"title" binding:"required,max=200"`
		Description string   `json:"description" binding:"required,max=1000"`
		Category    string   `json:"category" binding:"required"`
		Address     string   `json:"address" binding:"required,max=200"`
		ImageURL    *string  `json:"imageUrl,omitempty"`
		Latitude    *float64 `json:"latitude,omitempty" binding:"omitempty,min=-90,max=90"`
		Longitude   *float64 `json:"longitude,omitempty" binding:"omitempty,min=-180,max=180"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidCategory(input.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}

	// Coordinates come as a pair or not at all
	if (input.Latitude == nil) != (input.Longitude == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude must be provided together"})
		return
	}

	issue := models.Issue{
		ID:          primitive.NewObjectID(),
		Title:       input.Title,
		Description: input.Description,
		Category:    models.IssueCategory(input.Category),
		Location: models.Location{
			Address:   input.Address,
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
		},
		ImageURL:   input.ImageURL,
		Status:     models.Reported,
		ReportedBy: reportedByID,
		ReportedAt: time.Now(),
		UpdatedAt:  time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := config.GetCollection("issues").InsertOne(ctx, issue); err != nil {
		config.Log.WithError(err).Error("Failed to create issue")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create issue"})
		return
	}

	invalidateAnalyticsCache()

	c.JSON(http.StatusCreated, issue)
}

// issueView is an issue enriched with reporter and vendor summaries
type issueView struct {
	models.Issue
	ReportedBy map[string]interface{} `json:"reportedBy"`
	AssignedTo map[string]interface{} `json:"assignedTo,omitempty"`
}

func buildIssueView(ctx context.Context, issue models.Issue) issueView {
	userCollection := config.GetCollection("users")
	vendorCollection := config.GetCollection("vendors")

	reportedByMap := map[string]interface{}{
		"id": issue.ReportedBy,
	}
	var reporter models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": issue.ReportedBy}).Decode(&reporter); err == nil {
		reportedByMap["name"] = reporter.Name
		reportedByMap["email"] = reporter.Email
	}

	view := issueView{
		Issue:      issue,
		ReportedBy: reportedByMap,
	}

	if issue.AssignedTo != nil {
		assignedToMap := map[string]interface{}{
			"id": *issue.AssignedTo,
		}
		var vendor models.Vendor
		if err := vendorCollection.FindOne(ctx, bson.M{"_id": *issue.AssignedTo}).Decode(&vendor); err == nil {
			assignedToMap["name"] = vendor.Name
			assignedToMap["contactPhone"] = vendor.ContactPhone
		}
		view.AssignedTo = assignedToMap
	}

	return view
}

// GetAllIssues handles retrieving all issues with filtering, search, sorting and pagination
func GetAllIssues(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	category := c.Query("category")
	status := c.Query("status")
	search := c.Query("search")
	sortParam := c.DefaultQuery("sort", "newest")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	page, limit = NormalizePagination(page, limit)

	filter := BuildIssueFilter(category, status, search)
	skip := (page - 1) * limit

	issueCollection := config.GetCollection("issues")

	totalCount, err := issueCollection.CountDocuments(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count issues"})
		return
	}

	findOptions := options.Find().
		SetSort(IssueSortOptions(sortParam)).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := issueCollection.Find(ctx, filter, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issues"})
		return
	}
	defer cursor.Close(ctx)

	var issues []models.Issue
	if err := cursor.All(ctx, &issues); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode issues"})
		return
	}

	views := make([]issueView, 0, len(issues))
	for _, issue := range issues {
		views = append(views, buildIssueView(ctx, issue))
	}

	totalPages := int((totalCount + int64(limit) - 1) / int64(limit))

	c.JSON(http.StatusOK, gin.H{
		"issues":      views,
		"totalIssues": totalCount,
		"totalPages":  totalPages,
		"currentPage": page,
	})
}

// GetIssue retrieves an issue by its ID with reporter and vendor detail
func GetIssue(c *gin.Context) {
	idParam := c.Param("id")
	issueID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var issue models.Issue
	err = config.GetCollection("issues").FindOne(ctx, bson.M{"_id": issueID}).Decode(&issue)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issue"})
		}
		return
	}

	c.JSON(http.StatusOK, buildIssueView(ctx, issue))
}

// GetIssuesByUser retrieves all issues reported by the authenticated user
func GetIssuesByUser(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	userObjID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "reportedAt", Value: -1}})
	cursor, err := config.GetCollection("issues").Find(ctx, bson.M{"reportedBy": userObjID}, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issues"})
		return
	}
	defer cursor.Close(ctx)

	var issues []models.Issue
	if err := cursor.All(ctx, &issues); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode issues"})
		return
	}

	views := make([]issueView, 0, len(issues))
	for _, issue := range issues {
		views = append(views, buildIssueView(ctx, issue))
	}

	c.JSON(http.StatusOK, views)
}

// UpdateIssue lets the reporter edit an issue while it is still in the
// reported state. Admins may edit at any time. Status is never changed here.
func UpdateIssue(c *gin.Context) {
	idParam := c.Param("id")
	issueID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	userObjID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	roleVal, _ := c.Get("role")
	isAdmin := roleVal == string(models.RoleAdmin)

	var input struct {
		Title       *string  `json:"title,omitempty" binding:"omitempty,max=200"`
		Description *string  `json:"description,omitempty" binding:"omitempty,max=1000"`
		Category    *string  `json:"category,omitempty"`
		Address     *string  `json:"address,omitempty" binding:"omitempty,max=200"`
		ImageURL    *string  `json:"imageUrl,omitempty"`
		Latitude    *float64 `json:"latitude,omitempty" binding:"omitempty,min=-90,max=90"`
		Longitude   *float64 `json:"longitude,omitempty" binding:"omitempty,min=-180,max=180"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issueCollection := config.GetCollection("issues")

	var issue models.Issue
	err = issueCollection.FindOne(ctx, bson.M{"_id": issueID}).Decode(&issue)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issue"})
		}
		return
	}

	if !isAdmin {
		if issue.ReportedBy != userObjID {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to update this issue"})
			return
		}
		if issue.Status != models.Reported {
			c.JSON(http.StatusConflict, gin.H{"error": "Issue can no longer be edited once triage has started"})
			return
		}
	}

	update := bson.M{"updatedAt": time.Now()}
	if input.Title != nil {
		update["title"] = *input.Title
	}
	if input.Description != nil {
		update["description"] = *input.Description
	}
	if input.Category != nil {
		if !models.ValidCategory(*input.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}
		update["category"] = *input.Category
	}
	if input.Address != nil {
		update["location.address"] = *input.Address
	}
	if input.ImageURL != nil {
		update["imageUrl"] = input.ImageURL
	}
	if input.Latitude != nil || input.Longitude != nil {
		lat, lng, ok := MergeCoordinates(issue.Location, input.Latitude, input.Longitude)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude must be provided together"})
			return
		}
		update["location.latitude"] = lat
		update["location.longitude"] = lng
	}

	if _, err := issueCollection.UpdateOne(ctx, bson.M{"_id": issueID}, bson.M{"$set": update}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update issue"})
		return
	}

	invalidateAnalyticsCache()

	c.JSON(http.StatusOK, gin.H{"message": "Issue updated successfully"})
}

// UpdateIssueStatus moves an issue through its lifecycle. Admin only.
func UpdateIssueStatus(c *gin.Context) {
	idParam := c.Param("id")
	issueID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issueCollection := config.GetCollection("issues")

	var issue models.Issue
	err = issueCollection.FindOne(ctx, bson.M{"_id": issueID}).Decode(&issue)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issue"})
		}
		return
	}

	newStatus := models.IssueStatus(input.Status)
	if !models.CanTransition(issue.Status, newStatus) {
		c.JSON(http.StatusConflict, gin.H{"error": "Invalid status transition"})
		return
	}

	update := bson.M{"status": newStatus, "updatedAt": time.Now()}
	if _, err := issueCollection.UpdateOne(ctx, bson.M{"_id": issueID}, bson.M{"$set": update}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update issue status"})
		return
	}

	notifyReporter(ctx, issue, "Your issue \""+issue.Title+"\" is now "+string(newStatus))
	invalidateAnalyticsCache()

	c.JSON(http.StatusOK, gin.H{
		"message": "Issue status updated successfully",
		"status":  newStatus,
	})
}

// AssignVendor assigns a verified vendor to an issue. Admin only.
func AssignVendor(c *gin.Context) {
	idParam := c.Param("id")
	issueID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	var input struct {
		VendorID string `json:"vendorId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendorID, err := primitive.ObjectIDFromHex(input.VendorID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vendor ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issueCollection := config.GetCollection("issues")
	vendorCollection := config.GetCollection("vendors")

	var issue models.Issue
	err = issueCollection.FindOne(ctx, bson.M{"_id": issueID}).Decode(&issue)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issue"})
		}
		return
	}

	if issue.Status == models.Resolved {
		c.JSON(http.StatusConflict, gin.H{"error": "Cannot assign a vendor to a resolved issue"})
		return
	}

	var vendor models.Vendor
	err = vendorCollection.FindOne(ctx, bson.M{"_id": vendorID}).Decode(&vendor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve vendor"})
		}
		return
	}

	if !vendor.Assignable(issue.Category) {
		c.JSON(http.StatusConflict, gin.H{"error": "Vendor is not verified for this category"})
		return
	}

	// Assignment implies work is underway
	update := bson.M{
		"assignedTo": vendorID,
		"updatedAt":  time.Now(),
	}
	if issue.Status == models.Reported || issue.Status == models.Acknowledged {
		update["status"] = models.InProgress
	}

	if _, err := issueCollection.UpdateOne(ctx, bson.M{"_id": issueID}, bson.M{"$set": update}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign vendor"})
		return
	}

	// New assignment counts as a job for the vendor
	if issue.AssignedTo == nil || *issue.AssignedTo != vendorID {
		_, _ = vendorCollection.UpdateOne(ctx, bson.M{"_id": vendorID},
			bson.M{"$inc": bson.M{"totalJobs": 1}, "$set": bson.M{"updatedAt": time.Now()}})
	}

	notifyReporter(ctx, issue, vendor.Name+" has been assigned to your issue \""+issue.Title+"\"")
	invalidateAnalyticsCache()

	c.JSON(http.StatusOK, gin.H{
		"message": "Vendor assigned successfully",
		"vendor":  vendor.Name,
	})
}

// DeleteIssue removes an issue. The reporter may delete it while it is still
// reported; admins may delete at any time.
func DeleteIssue(c *gin.Context) {
	idParam := c.Param("id")
	issueID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	userObjID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	roleVal, _ := c.Get("role")
	isAdmin := roleVal == string(models.RoleAdmin)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issueCollection := config.GetCollection("issues")

	var issue models.Issue
	err = issueCollection.FindOne(ctx, bson.M{"_id": issueID}).Decode(&issue)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issue"})
		}
		return
	}

	if !isAdmin {
		if issue.ReportedBy != userObjID {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to delete this issue"})
			return
		}
		if issue.Status != models.Reported {
			c.JSON(http.StatusConflict, gin.H{"error": "Issue can no longer be deleted once triage has started"})
			return
		}
	}

	if _, err := issueCollection.DeleteOne(ctx, bson.M{"_id": issueID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete issue"})
		return
	}

	// Delete associated notifications
	_, _ = config.GetCollection("notifications").DeleteMany(ctx, bson.M{"issue": issueID})

	invalidateAnalyticsCache()

	c.JSON(http.StatusOK, gin.H{"message": "Issue deleted successfully"})
}

// RecentIssues returns the most recent geotagged issues for the map view
func RecentIssues(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{
		"location.latitude":  bson.M{"$exists": true, "$ne": nil},
		"location.longitude": bson.M{"$exists": true, "$ne": nil},
	}

	projection := bson.M{
		"_id":        1,
		"title":      1,
		"location":   1,
		"category":   1,
		"status":     1,
		"reportedAt": 1,
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "reportedAt", Value: -1}}).
		SetLimit(recentIssueLimit).
		SetProjection(projection)

	cursor, err := config.GetCollection("issues").Find(ctx, filter, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recent issues"})
		return
	}
	defer cursor.Close(ctx)

	var issues []models.Issue
	if err := cursor.All(ctx, &issues); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode recent issues"})
		return
	}

	type mapPin struct {
		ID         string               `json:"id"`
		Title      string               `json:"title"`
		Latitude   float64              `json:"latitude"`
		Longitude  float64              `json:"longitude"`
		Address    string               `json:"address"`
		Category   models.IssueCategory `json:"category"`
		Status     models.IssueStatus   `json:"status"`
		ReportedAt time.Time            `json:"reportedAt"`
	}

	pins := make([]mapPin, 0, len(issues))
	for _, issue := range issues {
		if issue.Location.Latitude == nil || issue.Location.Longitude == nil {
			continue
		}
		pins = append(pins, mapPin{
			ID:         issue.ID.Hex(),
			Title:      issue.Title,
			Latitude:   *issue.Location.Latitude,
			Longitude:  *issue.Location.Longitude,
			Address:    issue.Location.Address,
			Category:   issue.Category,
			Status:     issue.Status,
			ReportedAt: issue.ReportedAt,
		})
	}

	c.JSON(http.StatusOK, pins)
}

// GetIssueAnalytics returns analytical data about issues for the admin
// dashboard. The response is cached in Redis for a short window.
func GetIssueAnalytics(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Cache hit short-circuits the aggregation work
	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(ctx, analyticsCacheKey).Bytes()
		if err == nil {
			var payload gin.H
			if json.Unmarshal(cached, &payload) == nil {
				c.JSON(http.StatusOK, payload)
				return
			}
		} else if !errors.Is(err, redis.Nil) {
			config.Log.WithError(err).Warn("Failed to read analytics cache")
		}
	}

	issueCollection := config.GetCollection("issues")

	categoryPipeline := []bson.M{
		{
			"$group": bson.M{
				"_id":   "$category",
				"count": bson.M{"$sum": 1},
			},
		},
		{
			"$project": bson.M{
				"name":  "$_id",
				"value": "$count",
				"_id":   0,
			},
		},
	}

	categoryCursor, err := issueCollection.Aggregate(ctx, categoryPipeline)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get category analytics"})
		return
	}
	defer categoryCursor.Close(ctx)

	var issuesByCategory []bson.M
	if err := categoryCursor.All(ctx, &issuesByCategory); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode category analytics"})
		return
	}

	statusPipeline := []bson.M{
		{
			"$group": bson.M{
				"_id":   "$status",
				"count": bson.M{"$sum": 1},
			},
		},
		{
			"$project": bson.M{
				"name":  "$_id",
				"value": "$count",
				"_id":   0,
			},
		},
	}

	statusCursor, err := issueCollection.Aggregate(ctx, statusPipeline)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get status analytics"})
		return
	}
	defer statusCursor.Close(ctx)

	var issuesByStatus []bson.M
	if err := statusCursor.All(ctx, &issuesByStatus); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode status analytics"})
		return
	}

	// Reports per day for the last 7 days
	var last7Days []gin.H
	for i := 6; i >= 0; i-- {
		date := time.Now().AddDate(0, 0, -i)
		date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		nextDate := date.AddDate(0, 0, 1)

		count, err := issueCollection.CountDocuments(ctx, bson.M{
			"reportedAt": bson.M{
				"$gte": date,
				"$lt":  nextDate,
			},
		})
		if err != nil {
			count = 0
		}

		last7Days = append(last7Days, gin.H{
			"date":  date.Format("2006-01-02"),
			"count": count,
		})
	}

	totalIssues, err := issueCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		totalIssues = 0
	}

	openIssues, err := issueCollection.CountDocuments(ctx, bson.M{
		"status": bson.M{"$in": []string{
			string(models.Reported),
			string(models.Acknowledged),
			string(models.InProgress),
		}},
	})
	if err != nil {
		openIssues = 0
	}

	resolvedIssues, err := issueCollection.CountDocuments(ctx, bson.M{"status": models.Resolved})
	if err != nil {
		resolvedIssues = 0
	}

	totalVendors, err := config.GetCollection("vendors").CountDocuments(ctx, bson.M{})
	if err != nil {
		totalVendors = 0
	}

	response := gin.H{
		"issuesByCategory": issuesByCategory,
		"issuesByStatus":   issuesByStatus,
		"last7Days":        last7Days,
		"totalIssues":      totalIssues,
		"openIssues":       openIssues,
		"resolvedIssues":   resolvedIssues,
		"totalVendors":     totalVendors,
	}

	if config.RedisClient != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := config.RedisClient.Set(ctx, analyticsCacheKey, payload, analyticsCacheTTL).Err(); err != nil {
				config.Log.WithError(err).Warn("Failed to write analytics cache")
			}
		}
	}

	c.JSON(http.StatusOK, response)
}

// notifyReporter records a triage notification for the issue's reporter
func notifyReporter(ctx context.Context, issue models.Issue, message string) {
	notification := models.Notification{
		ID:        primitive.NewObjectID(),
		User:      issue.ReportedBy,
		Issue:     issue.ID,
		Message:   message,
		Read:      false,
		CreatedAt: time.Now(),
	}
	if _, err := config.GetCollection("notifications").InsertOne(ctx, notification); err != nil {
		config.Log.WithError(err).Warn("Failed to record notification")
	}
}

func invalidateAnalyticsCache() {
	if config.RedisClient == nil {
		return
	}
	if err := config.RedisClient.Del(config.Ctx, analyticsCacheKey).Err(); err != nil {
		config.Log.WithError(err).Warn("Failed to invalidate analytics cache")
	}
}
