package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/herdbook/internal/server/handlers"
)

// Handlers bundles the per-area HTTP adapters wired into the engine.
type Handlers struct {
	Animals    *handlers.AnimalsHandler
	Tasks      *handlers.TasksHandler
	Notes      *handlers.NotesHandler
	Treatments *handlers.TreatmentsHandler
	Chat       *handlers.ChatHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	api.GET("/animals", h.Animals.List)
	api.POST("/animals", h.Animals.Create)
	api.GET("/animals/stats", h.Animals.Stats)
	api.GET("/animals/:id", h.Animals.Get)
	api.PUT("/animals/:id", h.Animals.Update)
	api.DELETE("/animals/:id", h.Animals.Delete)
	api.PUT("/animals/:id/status", h.Animals.ChangeStatus)
	api.GET("/animals/:id/family", h.Animals.Family)
	api.POST("/animals/:id/birth-records", h.Animals.AddBirthRecord)
	api.DELETE("/animals/:id/birth-records/:recordId", h.Animals.DeleteBirthRecord)

	api.GET("/tasks", h.Tasks.List)
	api.POST("/tasks", h.Tasks.Create)
	api.POST("/tasks/:id/toggle", h.Tasks.Toggle)
	api.DELETE("/tasks/:id", h.Tasks.Delete)

	api.GET("/notes", h.Notes.List)
	api.POST("/notes", h.Notes.Create)
	api.PUT("/notes/:id", h.Notes.Update)
	api.DELETE("/notes/:id", h.Notes.Delete)

	api.GET("/treatment-schedules", h.Treatments.ListSchedules)
	api.POST("/treatment-schedules", h.Treatments.CreateSchedule)
	api.DELETE("/treatment-schedules/:id", h.Treatments.DeleteSchedule)
	api.POST("/treatment-schedules/:id/records", h.Treatments.Record)
	api.GET("/treatment-schedules/:id/records", h.Treatments.History)

	api.POST("/chat/rooms", h.Chat.OpenRoom)
	api.GET("/chat/rooms/:code", h.Chat.Room)
	api.GET("/chat/rooms/:code/messages", h.Chat.Messages)
	api.POST("/chat/rooms/:code/messages", h.Chat.PostMessage)
	api.GET("/chat/rooms/:code/stream", h.Chat.Stream)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
