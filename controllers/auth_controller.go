package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ToeMom/GroupUp-Final/services"
)

// ---------------- OTP LOGIN ----------------
func RequestOTP(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email string `json:"email" binding:"required,email"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := svc.RequestOTP(c.Request.Context(), input.Email); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "verification code sent"})
	}
}

func VerifyOTP(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email string `json:"email" binding:"required,email"`
			Code  string `json:"code" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		token, subject, err := svc.VerifyOTP(c.Request.Context(), input.Email, input.Code)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "userId": subject})
	}
}
