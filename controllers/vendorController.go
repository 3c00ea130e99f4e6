package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"vikasit-jharkhand-be/config"
	"vikasit-jharkhand-be/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateVendor registers a new vendor. Admin only.
func CreateVendor(c *gin.Context) {
	var input struct {
		Name         string   `json:"name" binding:"required,max=100"`
		ContactEmail string   `json:"contactEmail" binding:"required,email"`
		ContactPhone string   `json:"contactPhone" binding:"omitempty,min=7,max=15"`
		Specialities []string `json:"specialities" binding:"required,min=1"`
		BaseQuote    float64  `json:"baseQuote" binding:"omitempty,min=0"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	specialities := make([]models.IssueCategory, 0, len(input.Specialities))
	for _, s := range input.Specialities {
		if !models.ValidCategory(s) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid speciality: " + s})
			return
		}
		specialities = append(specialities, models.IssueCategory(s))
	}

	vendorCollection := config.GetCollection("vendors")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := vendorCollection.CountDocuments(ctx, bson.M{"name": input.Name})
	if err != nil {
		config.Log.WithError(err).Error("Error checking existing vendor")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Vendor with this name already exists"})
		return
	}

	vendor := models.Vendor{
		ID:           primitive.NewObjectID(),
		Name:         input.Name,
		ContactEmail: input.ContactEmail,
		ContactPhone: input.ContactPhone,
		Specialities: specialities,
		Rating:       0,
		TotalJobs:    0,
		BaseQuote:    input.BaseQuote,
		Verified:     false,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if _, err := vendorCollection.InsertOne(ctx, vendor); err != nil {
		config.Log.WithError(err).Error("Error inserting vendor")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vendor"})
		return
	}

	c.JSON(http.StatusCreated, vendor)
}

// GetAllVendors lists vendors with optional speciality filter and pagination. Admin only.
func GetAllVendors(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	speciality := c.Query("speciality")
	verified := c.Query("verified")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	page, limit = NormalizePagination(page, limit)

	filter := bson.M{}
	if speciality != "" && speciality != "all" {
		filter["specialities"] = speciality
	}
	if verified == "true" {
		filter["verified"] = true
	} else if verified == "false" {
		filter["verified"] = false
	}

	vendorCollection := config.GetCollection("vendors")

	totalCount, err := vendorCollection.CountDocuments(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count vendors"})
		return
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "name", Value: 1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := vendorCollection.Find(ctx, filter, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve vendors"})
		return
	}
	defer cursor.Close(ctx)

	var vendors []models.Vendor
	if err := cursor.All(ctx, &vendors); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode vendors"})
		return
	}

	totalPages := int((totalCount + int64(limit) - 1) / int64(limit))

	c.JSON(http.StatusOK, gin.H{
		"vendors":      vendors,
		"totalVendors": totalCount,
		"totalPages":   totalPages,
		"currentPage":  page,
	})
}

// GetVendor retrieves a vendor by ID. Admin only.
func GetVendor(c *gin.Context) {
	vendorID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vendor ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var vendor models.Vendor
	err = config.GetCollection("vendors").FindOne(ctx, bson.M{"_id": vendorID}).Decode(&vendor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve vendor"})
		}
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// UpdateVendor edits vendor details. Admin only. The job counter is
// maintained by the assignment flow, not by this endpoint.
func UpdateVendor(c *gin.Context) {
	vendorID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vendor ID"})
		return
	}

	var input struct {
		Name         *string  `json:"name,omitempty" binding:"omitempty,max=100"`
		ContactEmail *string  `json:"contactEmail,omitempty" binding:"omitempty,email"`
		ContactPhone *string  `json:"contactPhone,omitempty" binding:"omitempty,min=7,max=15"`
		Specialities []string `json:"specialities,omitempty"`
		Rating       *float64 `json:"rating,omitempty" binding:"omitempty,min=0,max=5"`
		BaseQuote    *float64 `json:"baseQuote,omitempty" binding:"omitempty,min=0"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{"updatedAt": time.Now()}
	if input.Name != nil {
		update["name"] = *input.Name
	}
	if input.ContactEmail != nil {
		update["contactEmail"] = *input.ContactEmail
	}
	if input.ContactPhone != nil {
		update["contactPhone"] = *input.ContactPhone
	}
	if input.Specialities != nil {
		specialities := make([]models.IssueCategory, 0, len(input.Specialities))
		for _, s := range input.Specialities {
			if !models.ValidCategory(s) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid speciality: " + s})
				return
			}
			specialities = append(specialities, models.IssueCategory(s))
		}
		if len(specialities) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Vendor must keep at least one speciality"})
			return
		}
		update["specialities"] = specialities
	}
	if input.Rating != nil {
		update["rating"] = *input.Rating
	}
	if input.BaseQuote != nil {
		update["baseQuote"] = *input.BaseQuote
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := config.GetCollection("vendors").UpdateOne(ctx, bson.M{"_id": vendorID}, bson.M{"$set": update})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vendor"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vendor updated successfully"})
}

// VerifyVendor toggles a vendor's verified flag. Admin only.
func VerifyVendor(c *gin.Context) {
	vendorID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vendor ID"})
		return
	}

	var input struct {
		Verified *bool `json:"verified" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := config.GetCollection("vendors").UpdateOne(ctx,
		bson.M{"_id": vendorID},
		bson.M{"$set": bson.M{"verified": *input.Verified, "updatedAt": time.Now()}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vendor"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vendor verification updated", "verified": *input.Verified})
}

// DeleteVendor removes a vendor that has no open assignments. Admin only.
func DeleteVendor(c *gin.Context) {
	vendorID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vendor ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	openAssignments, err := config.GetCollection("issues").CountDocuments(ctx, bson.M{
		"assignedTo": vendorID,
		"status":     bson.M{"$ne": models.Resolved},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check vendor assignments"})
		return
	}
	if openAssignments > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Vendor has unresolved assignments"})
		return
	}

	result, err := config.GetCollection("vendors").DeleteOne(ctx, bson.M{"_id": vendorID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vendor"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vendor deleted successfully"})
}

// MatchVendors lists verified vendors that handle the given category, best
// rated first. Admin only.
func MatchVendors(c *gin.Context) {
	category := c.Query("category")
	if !models.ValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{
		"verified":     true,
		"specialities": category,
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "totalJobs", Value: -1}})

	cursor, err := config.GetCollection("vendors").Find(ctx, filter, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve vendors"})
		return
	}
	defer cursor.Close(ctx)

	var vendors []models.Vendor
	if err := cursor.All(ctx, &vendors); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode vendors"})
		return
	}

	c.JSON(http.StatusOK, vendors)
}
