package httpserver

import (
	"errors"
	"net/http"

	"perfumebox/internal/checkout"
	"perfumebox/internal/pricing"
	"perfumebox/internal/session"

	"github.com/gin-gonic/gin"
)

type checkoutRequest struct {
	FullName      string `json:"fullName"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Zone          string `json:"zone"`
	PaymentMethod string `json:"paymentMethod"`
	TrxID         string `json:"trxId"`
	VoucherCode   string `json:"voucherCode"`
}

type checkoutResponse struct {
	OrderID      string `json:"orderId"`
	TotalAmount  int64  `json:"totalAmount"`
	ShippingFee  int64  `json:"shippingFee"`
	Discount     int64  `json:"discount"`
	SessionToken string `json:"sessionToken,omitempty"`
}

func checkoutHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		token := bearerToken(c)
		sessionAccountID := ""
		if acct, err := deps.Sessions.Resume(c.Request.Context(), token); err == nil {
			sessionAccountID = acct.ID
		} else if !errors.Is(err, session.ErrNoSession) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order failed, please try again"})
			return
		}

		store := deps.Carts.Get(sessionKey(c))
		result, err := deps.Checkout.PlaceOrder(c.Request.Context(), sessionAccountID, store, checkout.Draft{
			FullName:      req.FullName,
			Phone:         req.Phone,
			Email:         req.Email,
			Address:       req.Address,
			City:          req.City,
			Zone:          pricing.Zone(req.Zone),
			PaymentMethod: req.PaymentMethod,
			TrxID:         req.TrxID,
			VoucherCode:   req.VoucherCode,
		})
		if err != nil {
			var verr *checkout.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Msg})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order failed, please try again"})
			return
		}

		resp := checkoutResponse{
			OrderID:     result.OrderID,
			TotalAmount: result.TotalAmount,
			ShippingFee: result.ShippingFee,
			Discount:    result.Discount,
		}
		// Bind the resolved account to the caller's session so future visits
		// resume it. A binding failure must not fail the placed order.
		if bound, err := deps.Sessions.Bind(c.Request.Context(), token, result.AccountID); err == nil {
			resp.SessionToken = bound
		}

		c.JSON(http.StatusCreated, resp)
	}
}
