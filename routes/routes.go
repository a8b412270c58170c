package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ToeMom/GroupUp-Final/auth"
	"github.com/ToeMom/GroupUp-Final/controllers"
	"github.com/ToeMom/GroupUp-Final/middleware"
	"github.com/ToeMom/GroupUp-Final/services"
	"github.com/ToeMom/GroupUp-Final/utils"
)

// Deps holds everything the route table needs.
type Deps struct {
	Events     *services.EventService
	Comments   *services.CommentService
	Users      *services.UserService
	Categories *services.CategoryService
	Sweeper    *services.SweeperService
	Auth       *services.AuthService
	Images     *utils.ImageStore
	Tokens     *auth.Manager
}

func SetupRoutes(r *gin.Engine, d *Deps) {
	// public
	r.GET("/events", controllers.ListEvents(d.Events))
	r.GET("/events/all", controllers.ListAllEvents(d.Events))
	r.GET("/events/:id", controllers.GetEvent(d.Events))
	r.GET("/events/:id/comments", controllers.ListComments(d.Comments))
	r.GET("/comments/:id/replies", controllers.ListReplies(d.Comments))
	r.GET("/categories", controllers.ListCategories(d.Categories))

	// otp
	r.POST("/auth/request-otp", controllers.RequestOTP(d.Auth))
	r.POST("/auth/verify-otp", controllers.VerifyOTP(d.Auth))

	// protected
	authn := middleware.AuthMiddleware(d.Tokens)

	events := r.Group("/events")
	events.Use(authn)
	{
		events.POST("", controllers.CreateEvent(d.Events))
		events.PATCH("/:id", controllers.UpdateEvent(d.Events))
		events.DELETE("/:id", controllers.DeleteEvent(d.Events, d.Images))
		events.POST("/:id/join", controllers.JoinEvent(d.Events))
		events.POST("/:id/leave", controllers.LeaveEvent(d.Events))
		events.POST("/:id/comments", controllers.AddComment(d.Comments))
		events.GET("/user/:id", controllers.ListEventsByUser(d.Events))

		// moderation
		events.POST("/:id/approve", controllers.ApproveEvent(d.Events))
		events.POST("/:id/reject", controllers.RejectEvent(d.Events))
		events.DELETE("/:id/expire", controllers.ExpireEvent(d.Events))
	}

	waiting := r.Group("/waiting")
	waiting.Use(authn)
	{
		waiting.GET("", controllers.ListWaitingEvents(d.Events))
		waiting.GET("/user/:id", controllers.ListWaitingEventsByUser(d.Events))
	}

	rejected := r.Group("/rejected")
	rejected.Use(authn)
	{
		rejected.GET("/user/:id", controllers.ListRejectedEventsByUser(d.Events))
		rejected.DELETE("/:id", controllers.DeleteRejectedEvent(d.Events))
	}

	comments := r.Group("/comments")
	comments.Use(authn)
	{
		comments.DELETE("/:id", controllers.DeleteComment(d.Comments))
	}

	users := r.Group("/users")
	users.Use(authn)
	{
		users.POST("", controllers.CreateProfile(d.Users))
		users.GET("", controllers.ListUsers(d.Users))
		users.GET("/me", controllers.GetMe(d.Users))
		users.GET("/:id", controllers.GetUser(d.Users))
		users.PATCH("/:id", controllers.UpdateProfile(d.Users))
		users.DELETE("/:id", controllers.DeleteUser(d.Users))
		users.POST("/:id/moderator", controllers.AssignModerator(d.Users))
		users.DELETE("/:id/moderator", controllers.RemoveModerator(d.Users))
	}

	categories := r.Group("/categories")
	categories.Use(authn)
	{
		categories.POST("", controllers.AddCategory(d.Categories))
		categories.DELETE("/:id", controllers.DeleteCategory(d.Categories))
	}

	uploads := r.Group("/uploads")
	uploads.Use(authn)
	{
		uploads.POST("", controllers.UploadImage(d.Images))
	}

	admin := r.Group("/admin")
	admin.Use(authn)
	{
		admin.POST("/sweep", controllers.SweepExpiredEvents(d.Sweeper))
	}
}
