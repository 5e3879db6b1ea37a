package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"explore-simeulue-be/models"
	"explore-simeulue-be/store"
)

const feedbackCollection = "feedback"

// FeedbackController manages visitor feedback records
type FeedbackController struct {
	store store.Store
}

func NewFeedbackController(s store.Store) *FeedbackController {
	return &FeedbackController{store: s}
}

func (f *FeedbackController) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	docs, err := f.store.List(ctx, feedbackCollection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve feedback"})
		return
	}

	list := make([]models.Feedback, 0, len(docs))
	for _, doc := range docs {
		list = append(list, models.FeedbackFromDoc(doc))
	}

	c.JSON(http.StatusOK, gin.H{
		"feedback": list,
		"total":    len(list),
	})
}

func (f *FeedbackController) Create(c *gin.Context) {
	var input struct {
		IDWisata string  `json:"id_wisata" binding:"required"`
		Rating   float64 `json:"rating" binding:"min=0,max=5"`
		Feed     string  `json:"feed" binding:"required,max=1000"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Feedback must point at a destination that actually exists.
	if _, err := f.store.Get(ctx, "wisata", input.IDWisata); err != nil {
		respondWorkflowError(c, err, "Failed to create feedback")
		return
	}

	id := primitive.NewObjectID().Hex()
	err := f.store.Create(ctx, feedbackCollection, id, bson.M{
		"id_wisata": input.IDWisata,
		"rating":    input.Rating,
		"feed":      input.Feed,
		"tmt":       time.Now().UTC(),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create feedback"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Feedback created successfully",
		"id":      id,
	})
}

func (f *FeedbackController) Update(c *gin.Context) {
	var input struct {
		Rating float64 `json:"rating" binding:"min=0,max=5"`
		Feed   string  `json:"feed" binding:"required,max=1000"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := f.store.Update(ctx, feedbackCollection, c.Param("id"), bson.M{
		"rating": input.Rating,
		"feed":   input.Feed,
	})
	if err != nil {
		respondWorkflowError(c, err, "Failed to update feedback")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Feedback updated successfully"})
}

func (f *FeedbackController) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := f.store.Delete(ctx, feedbackCollection, c.Param("id")); err != nil {
		respondWorkflowError(c, err, "Failed to delete feedback")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Feedback deleted successfully"})
}
