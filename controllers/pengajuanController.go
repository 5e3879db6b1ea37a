package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"explore-simeulue-be/models"
	"explore-simeulue-be/services"
	"explore-simeulue-be/store"
)

// PengajuanController exposes the submission review queue
type PengajuanController struct {
	svc *services.PengajuanService
}

func NewPengajuanController(svc *services.PengajuanService) *PengajuanController {
	return &PengajuanController{svc: svc}
}

// List returns every submission, optionally narrowed by the kategori query
// parameter. Filtering happens client-side over the fetched list, matching
// the dashboard's category dropdown.
func (p *PengajuanController) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	list, err := p.svc.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve pengajuan"})
		return
	}

	if kategori := c.Query("kategori"); kategori != "" {
		list = p.svc.Filter(kategori)
	}

	c.JSON(http.StatusOK, gin.H{
		"pengajuan": list,
		"total":     len(list),
	})
}

// Approve promotes a pending submission into the wisata catalog
func (p *PengajuanController) Approve(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := p.svc.Approve(ctx, c.Param("id")); err != nil {
		respondWorkflowError(c, err, "Failed to approve pengajuan")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pengajuan approved successfully"})
}

// Reject marks a pending submission as rejected
func (p *PengajuanController) Reject(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := p.svc.Reject(ctx, c.Param("id")); err != nil {
		respondWorkflowError(c, err, "Failed to reject pengajuan")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pengajuan rejected successfully"})
}

// Delete permanently removes a submission
func (p *PengajuanController) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := p.svc.Delete(ctx, c.Param("id")); err != nil {
		respondWorkflowError(c, err, "Failed to delete pengajuan")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pengajuan deleted successfully"})
}

func respondWorkflowError(c *gin.Context, err error, fallback string) {
	var validationErr *models.ValidationError
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.Is(err, services.ErrDeclined):
		c.JSON(http.StatusOK, gin.H{"message": "Operation cancelled"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "detail": err.Error()})
	}
}
