package server

import (
	"time"

	"yt-uploader/infrastructure/i18n"
	"yt-uploader/infrastructure/realtime"
	httpHandler "yt-uploader/interfaces/http"
	"yt-uploader/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Channel httpHandler.IChannelHandler
	Preset  httpHandler.IPresetHandler
	Upload  httpHandler.IUploadHandler
	Bulk    httpHandler.IBulkHandler
	System  httpHandler.ISystemHandler
	Hub     *realtime.Hub
}

func InitiateRouter(h Handlers, secretKey string, allowedOrigins []string, texts *i18n.Localizer) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Metrics())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowWildcard:    true,
		AllowFiles:       true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", h.System.Healthz)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("api")
	api.Use(middleware.Auth(secretKey, texts))

	channels := api.Group("/channels")
	{
		channels.GET("", h.Channel.List)
		channels.POST("", h.Channel.Add)
		channels.GET("/:id", h.Channel.Get)
		channels.DELETE("/:id", h.Channel.Remove)
		channels.POST("/:id/refresh", h.Channel.Refresh)
		channels.POST("/:id/authenticate", h.Channel.Authenticate)
	}

	presets := api.Group("/presets")
	{
		presets.GET("", h.Preset.List)
		presets.POST("", h.Preset.Create)
		presets.POST("/import", h.Preset.Import)
		presets.POST("/export", h.Preset.Export)
		presets.GET("/:id", h.Preset.Get)
		presets.PUT("/:id", h.Preset.Update)
		presets.DELETE("/:id", h.Preset.Delete)
	}

	api.POST("/uploads", h.Upload.Upload)
	api.GET("/uploads/progress", h.Hub.Serve)

	bulk := api.Group("/bulk")
	{
		bulk.GET("/jobs", h.Bulk.ListJobs)
		bulk.POST("/jobs", h.Bulk.AddVideos)
		bulk.PATCH("/jobs/:id", h.Bulk.UpdateJob)
		bulk.DELETE("/jobs/:id", h.Bulk.RemoveJob)
		bulk.POST("/jobs/:id/preset", h.Bulk.ApplyPreset)
		bulk.POST("/settings", h.Bulk.ApplySettings)
		bulk.POST("/upload", h.Bulk.UploadAll)
	}

	api.GET("/schedule/timeslots", h.System.TimeSlots)
	api.POST("/system/open-external", h.System.OpenExternal)
	api.POST("/system/validate-video", h.System.ValidateVideo)

	return router
}
