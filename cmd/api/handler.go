package api

import (
	"log"

	taskDelivery "todo-desktop/internal/task/delivery"
	taskUsecasePkg "todo-desktop/internal/task/usecase"
	"todo-desktop/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const windowTitle = "To-Do List Application"

type Handler struct {
	taskUsecase taskUsecasePkg.TaskUsecase
	config      *config.Config
	window      *taskDelivery.Window
	taskHandler *taskDelivery.TaskHandler
}

func NewHandler(taskUc taskUsecasePkg.TaskUsecase, cfg *config.Config) (*Handler, error) {
	// Initialize runtime config for settings API
	InitRuntimeConfig(cfg.DefaultFilter)
	taskUc.SetDefaultFilterGetter(GetRuntimeDefaultFilter)

	window, err := taskDelivery.NewWindow(taskUc, windowTitle)
	if err != nil {
		return nil, err
	}

	taskHandler := taskDelivery.NewTaskHandler(taskUc)
	log.Println("[Server] Task handlers initialized")

	return &Handler{
		taskUsecase: taskUc,
		config:      cfg,
		window:      window,
		taskHandler: taskHandler,
	}, nil
}

// Engine builds the gin engine with middleware and routes
func (h *Handler) Engine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), RequestID())

	SetupRoutes(r, h.window, h.taskHandler)
	return r
}

func (h *Handler) Start(addr string) error {
	log.Printf("[Server] Open http://%s in your browser", addr)
	return h.Engine().Run(addr)
}

// RequestID tags each request with an X-Request-ID header, reusing the
// caller's when present
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("requestID", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
