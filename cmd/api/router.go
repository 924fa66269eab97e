package api

import (
	"net/http"

	taskDelivery "todo-desktop/internal/task/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, window *taskDelivery.Window, taskHandler *taskDelivery.TaskHandler) {
	// The window
	r.GET("/", window.Show)
	r.POST("/", window.Dispatch)

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.GetTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/search", taskHandler.SearchTasks)
			tasks.GET("/:id", taskHandler.GetTaskByID)
			tasks.PATCH("/:id", taskHandler.UpdateTask)
			tasks.PATCH("/:id/complete", taskHandler.MarkComplete)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		settings := api.Group("/settings")
		{
			settings.GET("/filter", GetFilterSettings)
			settings.PUT("/filter", UpdateFilterSettings)
		}
	}
}
