package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	OpenWizard(c *ginext.Context)
	GetWizard(c *ginext.Context)
	NextStep(c *ginext.Context)
	PrevStep(c *ginext.Context)
	SubmitWizard(c *ginext.Context)
	CloseWizard(c *ginext.Context)

	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	AttendEvent(c *ginext.Context)
	CancelAttendance(c *ginext.Context)
	EventPosts(c *ginext.Context)

	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUserAttendances(c *ginext.Context)
	GetUser(c *ginext.Context)
	GetEventAttendees(c *ginext.Context)
	UserFeed(c *ginext.Context)
	SuggestedUsers(c *ginext.Context)
	FollowUser(c *ginext.Context)
	UnfollowUser(c *ginext.Context)

	CreatePost(c *ginext.Context)
	LikePost(c *ginext.Context)
	UnlikePost(c *ginext.Context)
	AddComment(c *ginext.Context)
	ListComments(c *ginext.Context)

	UploadFile(c *ginext.Context)
	DeleteUpload(c *ginext.Context)
}

// InitRouter собирает API. Загруженные изображения раздаются из mediaDir по mediaPath.
func InitRouter(mode string, h Handler, mediaPath, mediaDir string, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Event creation wizard
		api.POST("/wizard", h.OpenWizard)
		api.GET("/wizard/:id", h.GetWizard)
		api.POST("/wizard/:id/next", h.NextStep)
		api.POST("/wizard/:id/back", h.PrevStep)
		api.POST("/wizard/:id/submit", h.SubmitWizard)
		api.DELETE("/wizard/:id", h.CloseWizard)

		// Events
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.DELETE("/events/:id", h.DeleteEvent)
		api.POST("/events/:id/attend", h.AttendEvent)
		api.POST("/events/:id/cancel", h.CancelAttendance)
		api.GET("/events/:id/attendees", h.GetEventAttendees)
		api.GET("/events/:id/posts", h.EventPosts)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.GET("/users/:id/attendances", h.GetUserAttendances)
		api.GET("/users/:id/feed", h.UserFeed)
		api.GET("/users/:id/suggested", h.SuggestedUsers)
		api.POST("/users/:id/follow", h.FollowUser)
		api.POST("/users/:id/unfollow", h.UnfollowUser)

		// Posts
		api.POST("/posts", h.CreatePost)
		api.POST("/posts/:id/like", h.LikePost)
		api.POST("/posts/:id/unlike", h.UnlikePost)
		api.POST("/posts/:id/comments", h.AddComment)
		api.GET("/posts/:id/comments", h.ListComments)

		// Uploads
		api.POST("/uploads", h.UploadFile)
		api.DELETE("/uploads/:key", h.DeleteUpload)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.Static(mediaPath, mediaDir)

	return router
}
