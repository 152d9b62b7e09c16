package httpserver

import (
	"errors"
	"net/http"

	"perfumebox/internal/domain"
	"perfumebox/internal/pricing"

	"github.com/gin-gonic/gin"
)

type cartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Variant   string `json:"variant"`
	Quantity  int    `json:"quantity"`
}

type cartResponse struct {
	Items     []domain.LineItem `json:"items"`
	Subtotal  int64             `json:"subtotal"`
	ItemCount int               `json:"itemCount"`
	IsOpen    bool              `json:"isOpen"`
	Quote     *cartQuote        `json:"quote,omitempty"`
}

// cartQuote previews checkout totals for a chosen zone and voucher without
// placing anything.
type cartQuote struct {
	ShippingFee int64 `json:"shippingFee"`
	Discount    int64 `json:"discount"`
	GrandTotal  int64 `json:"grandTotal"`
}

func getCartHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := deps.Carts.Get(sessionKey(c))
		resp := cartResponse{
			Items:     store.Items(),
			Subtotal:  store.Subtotal(),
			ItemCount: store.ItemCount(),
			IsOpen:    store.IsOpen(),
		}
		if zone := pricing.Zone(c.Query("zone")); zone.Valid() {
			fee := deps.Policy.ShippingFee(resp.Subtotal, zone)
			discount := deps.Policy.Discount(c.Query("voucher"))
			resp.Quote = &cartQuote{
				ShippingFee: fee,
				Discount:    discount,
				GrandTotal:  pricing.GrandTotal(resp.Subtotal, fee, discount),
			}
		}
		c.JSON(http.StatusOK, resp)
	}
}

func addCartItemHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
			return
		}
		variant := domain.Variant(req.Variant)
		if !variant.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown variant"})
			return
		}
		variant = variant.Normalize()

		p, err := deps.Products.GetByID(c.Request.Context(), req.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load product"})
			return
		}
		if !p.Purchasable() {
			c.JSON(http.StatusConflict, gin.H{"error": "product is out of stock"})
			return
		}

		store := deps.Carts.Get(sessionKey(c))
		store.Add(domain.LineItem{
			ProductID: p.ID,
			Variant:   variant,
			Title:     variant.CartTitle(p.Title),
			UnitPrice: p.VariantPrice(variant),
			ImageURL:  p.MainImageURL,
		}, req.Quantity)

		c.JSON(http.StatusOK, cartResponse{
			Items:     store.Items(),
			Subtotal:  store.Subtotal(),
			ItemCount: store.ItemCount(),
			IsOpen:    store.IsOpen(),
		})
	}
}

func updateCartItemHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
			return
		}
		variant := domain.Variant(req.Variant)
		if !variant.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown variant"})
			return
		}

		store := deps.Carts.Get(sessionKey(c))
		store.UpdateQuantity(req.ProductID, variant, req.Quantity)

		c.JSON(http.StatusOK, cartResponse{
			Items:     store.Items(),
			Subtotal:  store.Subtotal(),
			ItemCount: store.ItemCount(),
			IsOpen:    store.IsOpen(),
		})
	}
}

func removeCartItemHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Query("productId")
		if productID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
			return
		}
		store := deps.Carts.Get(sessionKey(c))
		store.Remove(productID, domain.Variant(c.Query("variant")))

		c.JSON(http.StatusOK, cartResponse{
			Items:     store.Items(),
			Subtotal:  store.Subtotal(),
			ItemCount: store.ItemCount(),
			IsOpen:    store.IsOpen(),
		})
	}
}

func clearCartHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := deps.Carts.Get(sessionKey(c))
		store.Clear()
		c.JSON(http.StatusOK, cartResponse{
			Items:     []domain.LineItem{},
			Subtotal:  0,
			ItemCount: 0,
			IsOpen:    store.IsOpen(),
		})
	}
}
