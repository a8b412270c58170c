package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ToeMom/GroupUp-Final/models"
	"github.com/ToeMom/GroupUp-Final/services"
)

// ---------------- CREATE ----------------
func CreateProfile(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.User
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		created, err := svc.CreateProfile(c.Request.Context(), callerID(c), &input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// ---------------- UPDATE ----------------
func UpdateProfile(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch models.UserPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updated, err := svc.Update(c.Request.Context(), callerID(c), c.Param("id"), &patch)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// ---------------- ROLES ----------------
func AssignModerator(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := svc.AssignModerator(c.Request.Context(), callerID(c), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func RemoveModerator(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := svc.RemoveModerator(c.Request.Context(), callerID(c), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// ---------------- DELETE ----------------
func DeleteUser(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), callerID(c), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
	}
}

// ---------------- READ ----------------
func GetUser(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func GetMe(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := svc.Get(c.Request.Context(), callerID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func ListUsers(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}
