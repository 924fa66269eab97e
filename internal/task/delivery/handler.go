package delivery

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"todo-desktop/internal/task/domain"
	"todo-desktop/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles the JSON task API
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
	}
}

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	Description string `json:"description"`
	Priority    *int   `json:"priority" binding:"required"`
	Category    string `json:"category"`
	DueDate     string `json:"due_date"`
}

// GetTasks returns all tasks, or the filtered subset when by or value is given
// GET /api/tasks?by=category&value=errands
func (h *TaskHandler) GetTasks(c *gin.Context) {
	by, hasBy := c.GetQuery("by")
	value, hasValue := c.GetQuery("value")

	var (
		tasks []*domain.Task
		err   error
	)
	if hasBy || hasValue {
		tasks, err = h.taskUsecase.FilterTasks(c.Request.Context(), by, value)
	} else {
		tasks, err = h.taskUsecase.ListTasks(c.Request.Context())
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"total": len(tasks),
	})
}

// SearchTasks fuzzy-matches task descriptions
// GET /api/tasks/search?q=milk
func (h *TaskHandler) SearchTasks(c *gin.Context) {
	tasks, err := h.taskUsecase.SearchTasks(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"total": len(tasks),
	})
}

// GetTaskByID returns a specific task
// GET /api/tasks/:id
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	id, err := parseTaskID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	task, err := h.taskUsecase.GetTask(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// CreateTask creates a new task
// POST /api/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.CreateTask(c.Request.Context(), req.Description, *req.Priority, req.Category, req.DueDate)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTask applies a partial update; omitted fields are left unchanged
// PATCH /api/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, err := parseTaskID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var updates usecase.TaskUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.taskUsecase.UpdateTask(c.Request.Context(), id, updates); err != nil {
		respondError(c, err)
		return
	}

	h.respondTask(c, id)
}

// MarkComplete is a convenience endpoint that only sets status to complete
// PATCH /api/tasks/:id/complete
func (h *TaskHandler) MarkComplete(c *gin.Context) {
	id, err := parseTaskID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.taskUsecase.MarkComplete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	h.respondTask(c, id)
}

// DeleteTask deletes a task. Deleting an unknown ID still succeeds.
// DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, err := parseTaskID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.taskUsecase.DeleteTask(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

func (h *TaskHandler) respondTask(c *gin.Context, id int64) {
	task, err := h.taskUsecase.GetTask(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("[TaskHandler] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func parseTaskID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTaskID, raw)
	}
	return id, nil
}
