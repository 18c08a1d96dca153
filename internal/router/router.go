package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	SubmitEvent(c *ginext.Context)
	DecideEvent(c *ginext.Context)
	CloneEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	ListVersions(c *ginext.Context)
	ListApprovals(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

// InitRouter mounts the API. The actor middleware guards every event route;
// user provisioning stays open so the first accounts can be created.
func InitRouter(mode string, h Handler, actor ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		events := api.Group("/events", actor)
		events.POST("", h.CreateEvent)
		events.GET("", h.ListEvents)
		events.GET("/:id", h.GetEvent)
		events.PUT("/:id", h.UpdateEvent)
		events.POST("/:id/submit", h.SubmitEvent)
		events.POST("/:id/decision", h.DecideEvent)
		events.POST("/:id/clone", h.CloneEvent)
		events.GET("/:id/versions", h.ListVersions)
		events.GET("/:id/approvals", h.ListApprovals)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
