package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"explore-simeulue-be/models"
	"explore-simeulue-be/store"
)

const userCollection = "users"

// UserController manages end-user accounts from the dashboard
type UserController struct {
	store store.Store
}

func NewUserController(s store.Store) *UserController {
	return &UserController{store: s}
}

func (u *UserController) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	docs, err := u.store.List(ctx, userCollection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}

	list := make([]models.User, 0, len(docs))
	for _, doc := range docs {
		list = append(list, models.UserFromDoc(doc))
	}

	c.JSON(http.StatusOK, gin.H{
		"users": list,
		"total": len(list),
	})
}

func (u *UserController) Create(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required,max=50"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := u.store.Query(ctx, userCollection, "email", input.Email)
	if err != nil {
		log.Println("Error checking existing user:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	if len(existing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User with this email already exists"})
		return
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	}
	if err := user.HashPassword(); err != nil {
		log.Println("Error hashing password:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	id := primitive.NewObjectID().Hex()
	if err := u.store.Create(ctx, userCollection, id, user.Fields()); err != nil {
		log.Println("Error inserting user:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       id,
		"username": user.Username,
		"email":    user.Email,
	})
}

func (u *UserController) Update(c *gin.Context) {
	var input struct {
		Username *string `json:"username,omitempty"`
		Email    *string `json:"email,omitempty" binding:"omitempty,email"`
		Password *string `json:"password,omitempty" binding:"omitempty,min=6"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{}
	if input.Username != nil {
		update["username"] = *input.Username
	}
	if input.Email != nil {
		update["email"] = *input.Email
	}
	if input.Password != nil {
		user := models.User{Password: *input.Password}
		if err := user.HashPassword(); err != nil {
			log.Println("Error hashing password:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
			return
		}
		update["password"] = user.Password
	}
	if len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := u.store.Update(ctx, userCollection, c.Param("id"), update); err != nil {
		respondWorkflowError(c, err, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}

func (u *UserController) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := u.store.Delete(ctx, userCollection, c.Param("id")); err != nil {
		respondWorkflowError(c, err, "Failed to delete user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
