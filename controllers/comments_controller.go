package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ToeMom/GroupUp-Final/models"
	"github.com/ToeMom/GroupUp-Final/services"
)

// ---------------- CREATE ----------------
func AddComment(svc *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Comment
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		created, err := svc.Add(c.Request.Context(), callerID(c), &input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// ---------------- DELETE ----------------
func DeleteComment(svc *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), callerID(c), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
	}
}

// ---------------- READ ----------------
func ListComments(svc *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		comments, err := svc.ListTopLevel(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, comments)
	}
}

func ListReplies(svc *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		replies, err := svc.ListReplies(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, replies)
	}
}
