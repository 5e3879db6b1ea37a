package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"explore-simeulue-be/models"
	"explore-simeulue-be/services"
)

// WisataController manages the published destination catalog
type WisataController struct {
	svc *services.WisataService
}

func NewWisataController(svc *services.WisataService) *WisataController {
	return &WisataController{svc: svc}
}

type wisataInput struct {
	NamaWisata       string   `json:"nama_wisata" binding:"required,max=200"`
	Kategori         string   `json:"kategori" binding:"required"`
	Alamat           string   `json:"alamat" binding:"required,max=300"`
	WaktuOperasional string   `json:"waktu_operasional"`
	Karcis           string   `json:"karcis"`
	Rating           float64  `json:"rating"`
	Deskripsi        string   `json:"deskripsi"`
	Images           []string `json:"images"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	IsOpen           *string  `json:"is_open,omitempty"`
}

func (in *wisataInput) toModel(id string) models.Wisata {
	w := models.Wisata{
		ID:               id,
		NamaWisata:       in.NamaWisata,
		Kategori:         in.Kategori,
		Alamat:           in.Alamat,
		WaktuOperasional: in.WaktuOperasional,
		Karcis:           in.Karcis,
		Rating:           in.Rating,
		Deskripsi:        in.Deskripsi,
		Images:           in.Images,
		Lokasi:           models.Lokasi{Latitude: in.Latitude, Longitude: in.Longitude},
		Status:           models.StatusApproved,
		IsOpen:           models.Open,
	}
	if in.IsOpen != nil {
		w.IsOpen = models.OpenStatus(*in.IsOpen)
	}
	return w
}

func (w *WisataController) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	list, err := w.svc.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve wisata"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"wisata": list,
		"total":  len(list),
	})
}

func (w *WisataController) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	wisata, err := w.svc.Get(ctx, c.Param("id"))
	if err != nil {
		respondWorkflowError(c, err, "Failed to retrieve wisata")
		return
	}

	c.JSON(http.StatusOK, wisata)
}

func (w *WisataController) Create(c *gin.Context) {
	var input wisataInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := w.svc.Create(ctx, input.toModel(""))
	if err != nil {
		respondWorkflowError(c, err, "Failed to create wisata")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Wisata created successfully"})
}

func (w *WisataController) Update(c *gin.Context) {
	var input wisataInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := w.svc.Update(ctx, input.toModel(c.Param("id"))); err != nil {
		respondWorkflowError(c, err, "Failed to update wisata")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Wisata updated successfully"})
}

// Delete removes a destination together with its feedback
func (w *WisataController) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := w.svc.Delete(ctx, c.Param("id")); err != nil {
		respondWorkflowError(c, err, "Failed to delete wisata")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Wisata deleted successfully"})
}

// SetOpen toggles the operational open/closed flag
func (w *WisataController) SetOpen(c *gin.Context) {
	var input struct {
		IsOpen string `json:"is_open" binding:"required,oneof=open closed"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := w.svc.SetOpen(ctx, c.Param("id"), input.IsOpen == "open"); err != nil {
		respondWorkflowError(c, err, "Failed to update wisata status")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Wisata status updated successfully"})
}
