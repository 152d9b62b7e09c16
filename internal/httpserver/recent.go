package httpserver

import (
	"net/http"

	"perfumebox/internal/recent"

	"github.com/gin-gonic/gin"
)

type recentRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Brand     string `json:"brand"`
	Price     int64  `json:"price"`
	ImageURL  string `json:"imageUrl"`
	Slug      string `json:"slug"`
}

func listRecentHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := deps.Recent.List(c.Request.Context(), sessionKey(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load recently viewed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": entries})
	}
}

func addRecentHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req recentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId and title required"})
			return
		}
		err := deps.Recent.Add(c.Request.Context(), sessionKey(c), recent.Entry{
			ProductID: req.ProductID,
			Title:     req.Title,
			Brand:     req.Brand,
			Price:     req.Price,
			ImageURL:  req.ImageURL,
			Slug:      req.Slug,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record view"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
