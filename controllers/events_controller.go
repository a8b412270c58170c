package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ToeMom/GroupUp-Final/models"
	"github.com/ToeMom/GroupUp-Final/services"
	"github.com/ToeMom/GroupUp-Final/utils"
)

// ---------------- CREATE ----------------
func CreateEvent(svc *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Event
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		created, err := svc.Create(c.Request.Context(), callerID(c), &input)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

// ---------------- MODERATION ----------------
func ApproveEvent(svc *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		approved, err := svc.Approve(c.Request.Context(), callerID(c), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, approved)
	}
}

func RejectEvent(svc *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Reason string `json:"reason"`
		}
		// Reason is optional; an empty body is fine.
		_ = c.ShouldBindJSON(&input)

		if err := svc.Reject(c.Request.Context(), callerID(c), c.Param("id"), input.Reason); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "event rejected"})
	}
}

// ---------------- DELETE ----------------
func DeleteEvent(svc *services.EventService, images *utils.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("id")

		event, err := svc.GetApproved(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}

		deletedComments, err := svc.DeleteApproved(ctx, callerID(c), id)
		if err != nil {
			respondError(c, err)
			return
		}

		if images != nil && event.Image != "" {
			if err := images.Delete(ctx, event.Image); err != nil {
				logrus.Warnf("could not delete image for event %s: %v", id, err)
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":         "event deleted successfully",
			"id":              id,
			"deletedComments": deletedComments,
		})
	}
}

func ExpireEvent(svc *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Expire(c.Request.Context(), callerID(c), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "event expired"})
	}
}

func DeleteRejectedEvent(svc *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteRejected(c.Request.Context(), callerID(c), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "rejected event deleted"})
	}
}

// ---------------- PARTICIPANTS ----------------
func JoinEvent(svc *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, err := svc.Join(c.Request.Context(), callerID(c), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, event)
	}
}

func LeaveEvent(svc *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, err := svc.Leave(c.Request.Context(), callerID(c), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, event)
	}
}

// ---------------- UPDATE ----------------
func UpdateEvent(svc *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch models.EventPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if patch.IsEmpty() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
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

// ---------------- READ ----------------
func GetEvent(svc *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, err := svc.GetApproved(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, event)
	}
}

func ListEvents(svc *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

		events, err := svc.ListApprovedPage(c.Request.Context(), limit, offset)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, events)
	}
}

func ListAllEvents(svc *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := svc.ListAllApproved(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, events)
	}
}

func ListEventsByUser(svc *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := svc.ListByCreator(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, events)
	}
}

func ListWaitingEvents(svc *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := svc.ListWaiting(c.Request.Context(), callerID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, events)
	}
}

func ListWaitingEventsByUser(svc *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := svc.ListWaitingByCreator(c.Request.Context(), callerID(c), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, events)
	}
}

func ListRejectedEventsByUser(svc *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := svc.ListRejectedByCreator(c.Request.Context(), callerID(c), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, events)
	}
}

// ---------------- SWEEP ----------------
func SweepExpiredEvents(svc *services.SweeperService) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := svc.SweepAs(c.Request.Context(), callerID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":       "expired events deleted successfully",
			"count":         result.Count,
			"deletedEvents": result.DeletedIDs,
		})
	}
}
