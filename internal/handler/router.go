package handler

import (
	"github.com/gin-gonic/gin"
)

// Routes groups the console handlers for registration.
type Routes struct {
	Sessions  *SessionHandler
	Calendar  *CalendarHandler
	Schedule  *ScheduleHandler
	Downloads *DownloadHandler
	Metrics   *MetricsHandler

	// RequireSession resolves the caller's session; every /ui route except
	// session creation runs behind it.
	RequireSession gin.HandlerFunc
	MetricsEnabled bool
}

// Register mounts every console route on r.
func (rt Routes) Register(r gin.IRouter) {
	r.GET("/health", rt.Metrics.Health)
	r.GET("/ready", rt.Metrics.Ready)
	if rt.MetricsEnabled {
		r.GET("/metrics", rt.Metrics.Prometheus)
	}
	r.GET("/downloads/:token", rt.Downloads.Get)

	ui := r.Group("/ui")
	ui.POST("/session", rt.Sessions.Create)

	scoped := ui.Group("")
	scoped.Use(rt.RequireSession)
	{
		scoped.GET("/state", rt.Sessions.State)
		scoped.DELETE("/session", rt.Sessions.Close)
		scoped.POST("/confirmations/:token", rt.Sessions.Confirm)

		scoped.GET("/calendar/options", rt.Calendar.Options)
		scoped.POST("/view", rt.Calendar.ChangeView)
		scoped.POST("/calendar/prev", rt.Calendar.Prev)
		scoped.POST("/calendar/next", rt.Calendar.Next)
		scoped.POST("/calendar/today", rt.Calendar.Today)

		scoped.POST("/equipment/all", rt.Calendar.SetAllEquipment)
		scoped.POST("/equipment/:id", rt.Calendar.ToggleEquipment)
		scoped.POST("/products/search", rt.Calendar.SearchProducts)

		scoped.POST("/events", rt.Calendar.CreateEvent)
		scoped.POST("/events/selected/delete", rt.Calendar.DeleteSelected)
		scoped.POST("/events/selected/edit", rt.Calendar.EditSelected)
		scoped.POST("/events/:id/click", rt.Calendar.ClickEvent)
		scoped.PATCH("/events/:id", rt.Calendar.MoveEvent)
		scoped.DELETE("/events/:id", rt.Calendar.DeleteEvent)
		scoped.POST("/popup/close", rt.Calendar.ClosePopup)
		scoped.POST("/clicks", rt.Calendar.GlobalClick)

		scoped.POST("/upload/modal", rt.Schedule.OpenModal)
		scoped.DELETE("/upload/modal", rt.Schedule.CloseModal)
		scoped.POST("/upload/dragover", rt.Schedule.DragOver)
		scoped.POST("/upload/file", rt.Schedule.SelectFile)
		scoped.DELETE("/upload/file", rt.Schedule.RemoveFile)
		scoped.POST("/upload", rt.Schedule.Upload)

		scoped.POST("/schedule/generate", rt.Schedule.Generate)
		scoped.POST("/schedule/reload", rt.Schedule.Reload)
		scoped.POST("/schedule/export", rt.Schedule.Export)
		scoped.POST("/schedule/print", rt.Schedule.Print)
	}
}
