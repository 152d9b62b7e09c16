package httpserver

import (
	"log"
	"net/http"
	"strings"
	"time"

	"perfumebox/internal/cart"
	"perfumebox/internal/checkout"
	"perfumebox/internal/pricing"
	"perfumebox/internal/recent"
	customerrepo "perfumebox/internal/repository/customer"
	orderrepo "perfumebox/internal/repository/order"
	productrepo "perfumebox/internal/repository/product"
	"perfumebox/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Deps carries the services the handlers depend on.
type Deps struct {
	Products       productrepo.Repository
	Orders         orderrepo.Repository
	Customers      customerrepo.Repository
	Carts          *cart.Registry
	Checkout       *checkout.Service
	Sessions       *session.Service
	Recent         *recent.Store
	Policy         pricing.Policy
	AllowedOrigins []string
}

const cartCookieName = "pb_session"

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, rdb *redis.Client, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	origins := deps.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db, rdb))

	api := router.Group("/api")
	{
		api.GET("/products", listProductsHandler(deps))
		api.GET("/products/:slug", getProductHandler(deps))

		api.GET("/cart", getCartHandler(deps))
		api.POST("/cart/items", addCartItemHandler(deps))
		api.PATCH("/cart/items", updateCartItemHandler(deps))
		api.DELETE("/cart/items", removeCartItemHandler(deps))
		api.POST("/cart/clear", clearCartHandler(deps))

		api.POST("/checkout", checkoutHandler(deps))
		api.GET("/orders", listOrdersHandler(deps))
		api.GET("/orders/:id", getOrderHandler(deps))

		api.POST("/auth/login", loginHandler(deps))
		api.POST("/auth/logout", logoutHandler(deps))
		api.GET("/auth/me", meHandler(deps))

		api.GET("/recently-viewed", listRecentHandler(deps))
		api.POST("/recently-viewed", addRecentHandler(deps))
	}

	return router
}

// sessionKey returns the caller's storefront session key, issuing a cookie on
// first touch. The key scopes the in-memory cart and the recently-viewed
// list.
func sessionKey(c *gin.Context) string {
	if key, err := c.Cookie(cartCookieName); err == nil && key != "" {
		return key
	}
	key := uuid.NewString()
	c.SetCookie(cartCookieName, key, int((30 * 24 * time.Hour).Seconds()), "/", "", false, true)
	return key
}

// bearerToken extracts the account session token, if any.
func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}
