package delivery

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"todo-desktop/internal/task/domain"
	"todo-desktop/internal/task/repository"
	"todo-desktop/internal/task/usecase"
	"todo-desktop/pkg/database"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter wires the window and JSON API over a temp sqlite file
func newTestRouter(t *testing.T) (*gin.Engine, usecase.TaskUsecase) {
	t.Helper()

	db, err := database.NewSQLiteConnection(filepath.Join(t.TempDir(), "todo.db"), nil)
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { database.Close(db) })

	repo := repository.NewGormTaskRepository(db)
	if err := repo.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	uc := usecase.NewTaskUsecase(repo)

	window, err := NewWindow(uc, "Test Window")
	if err != nil {
		t.Fatalf("NewWindow failed: %v", err)
	}
	handler := NewTaskHandler(uc)

	r := gin.New()
	r.GET("/", window.Show)
	r.POST("/", window.Dispatch)
	api := r.Group("/api/tasks")
	api.GET("", handler.GetTasks)
	api.POST("", handler.CreateTask)
	api.GET("/search", handler.SearchTasks)
	api.GET("/:id", handler.GetTaskByID)
	api.PATCH("/:id", handler.UpdateTask)
	api.PATCH("/:id/complete", handler.MarkComplete)
	api.DELETE("/:id", handler.DeleteTask)

	return r, uc
}

func seedTask(t *testing.T, uc usecase.TaskUsecase, description string, priority int, category, dueDate string) *domain.Task {
	t.Helper()

	task, err := uc.CreateTask(context.Background(), description, priority, category, dueDate)
	if err != nil {
		t.Fatalf("Failed to seed task %q: %v", description, err)
	}
	return task
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r http.Handler, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
