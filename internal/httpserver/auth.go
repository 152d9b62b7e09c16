package httpserver

import (
	"errors"
	"net/http"

	"perfumebox/internal/session"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email"`
}

func loginHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "phone and fullName required"})
			return
		}
		acct, token, err := deps.Sessions.Login(c.Request.Context(), req.Phone, req.FullName, req.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"account": acct, "token": token})
	}
}

func meHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		acct, err := deps.Sessions.Resume(c.Request.Context(), bearerToken(c))
		if err != nil {
			if errors.Is(err, session.ErrNoSession) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load account"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"account": acct})
	}
}

func logoutHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.Sessions.Logout(c.Request.Context(), bearerToken(c)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "logged out"})
	}
}
