// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"videotube/internal/delivery/http/middleware"
	"videotube/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	CommentHandler *handler.CommentHandler
	VideoHandler   *handler.VideoHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	commentHandler *handler.CommentHandler
	videoHandler   *handler.VideoHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		commentHandler: params.CommentHandler,
		videoHandler:   params.VideoHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
		rateLimiter:    params.RateLimiter,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Account routes. Auth is attached per route so unknown /users paths stay 404.
	authenticate := r.authMiddleware.Authenticate
	usersGroup := apiV1.Group("/users")
	{
		usersGroup.POST("/register", r.userHandler.Register, r.rateLimiter.Handle)
		usersGroup.POST("/login", r.userHandler.Login, r.rateLimiter.Handle)
		usersGroup.POST("/refresh-token", r.userHandler.RefreshToken)

		usersGroup.POST("/logout", r.userHandler.Logout, authenticate)
		usersGroup.POST("/change-password", r.userHandler.ChangePassword, authenticate)
		usersGroup.GET("/current-user", r.userHandler.GetCurrentUser, authenticate)
		usersGroup.PATCH("/update-account", r.userHandler.UpdateAccountDetails, authenticate)
		usersGroup.PATCH("/avatar", r.userHandler.UpdateAvatar, authenticate)
		usersGroup.PATCH("/cover-image", r.userHandler.UpdateCoverImage, authenticate)
		usersGroup.GET("/c/:username", r.userHandler.GetChannelProfile, authenticate)
		usersGroup.GET("/history", r.userHandler.GetWatchHistory, authenticate)
	}

	commentsGroup := apiV1.Group("/comments", r.authMiddleware.Authenticate)
	{
		commentsGroup.GET("/:videoId", r.commentHandler.ListComments)
		commentsGroup.POST("/:videoId", r.commentHandler.AddComment)
		commentsGroup.DELETE("/c/:commentId", r.commentHandler.DeleteComment)
	}

	videosGroup := apiV1.Group("/videos", r.authMiddleware.Authenticate)
	{
		videosGroup.POST("", r.videoHandler.PublishVideo)
		videosGroup.GET("/:videoId", r.videoHandler.GetVideo)
		videosGroup.POST("/:videoId/view", r.videoHandler.RecordView)
		videosGroup.PATCH("/toggle/publish/:videoId", r.videoHandler.TogglePublish)
		videosGroup.GET("/channel/:userId", r.videoHandler.ListChannelVideos)
	}
}
