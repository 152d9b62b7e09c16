package httpserver

import (
	"errors"
	"net/http"

	"perfumebox/internal/domain"
	"perfumebox/internal/session"

	"github.com/gin-gonic/gin"
)

func listOrdersHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		acct, err := deps.Sessions.Resume(c.Request.Context(), bearerToken(c))
		if err != nil {
			if errors.Is(err, session.ErrNoSession) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load orders"})
			return
		}

		orders, err := deps.Orders.ListByAccount(c.Request.Context(), acct.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load orders"})
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

func getOrderHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := deps.Orders.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load order"})
			return
		}

		resp := gin.H{"order": o}
		// The shipping snapshot is written in the same checkout pass as the
		// order, so a missing one only happens for legacy rows.
		if cust, err := deps.Customers.GetByID(c.Request.Context(), o.CustomerID); err == nil {
			resp["customer"] = cust
		}
		c.JSON(http.StatusOK, resp)
	}
}
