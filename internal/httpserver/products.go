package httpserver

import (
	"errors"
	"net/http"

	"perfumebox/internal/domain"

	"github.com/gin-gonic/gin"
)

func listProductsHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := deps.Products.List(c.Request.Context(), c.Query("category"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load products"})
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

func getProductHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := deps.Products.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load product"})
			return
		}
		if !p.IsVisible {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": p})
	}
}
