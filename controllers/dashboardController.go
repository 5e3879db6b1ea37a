package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"explore-simeulue-be/config"
	"explore-simeulue-be/store"
)

const statsCacheKey = "dashboard:stats"
const statsCacheTTL = 60 * time.Second

// DashboardController serves the landing-page counters
type DashboardController struct {
	store store.Store
}

func NewDashboardController(s store.Store) *DashboardController {
	return &DashboardController{store: s}
}

// Stats returns per-collection document counts, cached briefly in Redis so
// refreshing the dashboard does not hammer the document store.
func (d *DashboardController) Stats(c *gin.Context) {
	if cached, err := config.RedisClient.Get(config.Ctx, statsCacheKey).Result(); err == nil {
		var stats map[string]int64
		if json.Unmarshal([]byte(cached), &stats) == nil {
			c.JSON(http.StatusOK, stats)
			return
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats := make(map[string]int64, 4)
	for _, collection := range []string{"wisata", "pengajuan_wisata", "feedback", "users"} {
		count, err := d.store.Count(ctx, collection)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count " + collection})
			return
		}
		stats[collection] = count
	}

	if payload, err := json.Marshal(stats); err == nil {
		config.RedisClient.Set(config.Ctx, statsCacheKey, payload, statsCacheTTL)
	}

	c.JSON(http.StatusOK, stats)
}
