package delivery

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"

	"todo-desktop/internal/task/domain"
	"todo-desktop/internal/task/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templateFS embed.FS

// Window actions, one per button
const (
	ActionAdd      = "add"
	ActionUpdate   = "update"
	ActionDelete   = "delete"
	ActionComplete = "complete"
	ActionFilter   = "filter"
)

// Columns are the table headings shown in the window
var Columns = []string{"ID", "Description", "Priority", "Status", "Category", "Due Date"}

// Window is the single form-and-table view. It is built once at startup and
// shared by every request; it keeps no per-request state.
type Window struct {
	taskUsecase usecase.TaskUsecase
	tmpl        *template.Template
	title       string
}

// TaskForm holds the raw text of the window's inputs
type TaskForm struct {
	Description string
	Priority    string
	Category    string
	DueDate     string
	Complete    bool
	Selected    string
	FilterBy    string
	FilterValue string
}

type windowView struct {
	Title        string
	Columns      []string
	FilterFields []string
	Tasks        []*domain.Task
	Form         TaskForm
	Filtered     bool
	Message      string
	IsError      bool
}

// NewWindow parses the embedded window template
func NewWindow(taskUsecase usecase.TaskUsecase, title string) (*Window, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/window.html")
	if err != nil {
		return nil, fmt.Errorf("parse window template: %w", err)
	}
	return &Window{
		taskUsecase: taskUsecase,
		tmpl:        tmpl,
		title:       title,
	}, nil
}

// Show renders the full task list
// GET /
func (w *Window) Show(c *gin.Context) {
	w.reload(c, http.StatusOK, TaskForm{FilterBy: domain.FilterByCategory}, "", false)
}

// Dispatch handles a button press from the window form
// POST /
func (w *Window) Dispatch(c *gin.Context) {
	form := readTaskForm(c)
	ctx := c.Request.Context()
	action := c.PostForm("action")

	var (
		err     error
		message string
	)
	switch action {
	case ActionAdd:
		var task *domain.Task
		task, err = w.add(ctx, form)
		if err == nil {
			message = fmt.Sprintf("Added task %d", task.ID)
			form = clearedForm(form)
		}
	case ActionUpdate:
		var id int64
		id, err = w.update(ctx, form)
		if err == nil {
			message = fmt.Sprintf("Updated task %d", id)
			form = clearedForm(form)
		}
	case ActionDelete:
		var id int64
		if id, err = selectedID(form); err == nil {
			if err = w.taskUsecase.DeleteTask(ctx, id); err == nil {
				message = fmt.Sprintf("Deleted task %d", id)
				form.Selected = ""
			}
		}
	case ActionComplete:
		var id int64
		if id, err = selectedID(form); err == nil {
			if err = w.taskUsecase.MarkComplete(ctx, id); err == nil {
				message = fmt.Sprintf("Marked task %d complete", id)
			}
		}
	case ActionFilter:
		w.filter(c, form)
		return
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	if err != nil {
		w.reload(c, statusFor(err), form, errorMessage(err), true)
		return
	}
	w.reload(c, http.StatusOK, form, message, false)
}

func (w *Window) add(ctx context.Context, form TaskForm) (*domain.Task, error) {
	priority, err := parsePriority(form.Priority)
	if err != nil {
		return nil, err
	}
	return w.taskUsecase.CreateTask(ctx, form.Description, priority, form.Category, form.DueDate)
}

// update applies the form to the selected task. Blank inputs leave their
// field unchanged; the status always follows the checkbox.
func (w *Window) update(ctx context.Context, form TaskForm) (int64, error) {
	id, err := selectedID(form)
	if err != nil {
		return 0, err
	}

	var updates usecase.TaskUpdateRequest
	if form.Description != "" {
		updates.Description = &form.Description
	}
	if strings.TrimSpace(form.Priority) != "" {
		priority, err := parsePriority(form.Priority)
		if err != nil {
			return 0, err
		}
		updates.Priority = &priority
	}
	if form.Category != "" {
		updates.Category = &form.Category
	}
	if form.DueDate != "" {
		updates.DueDate = &form.DueDate
	}
	status := string(domain.TaskStatusIncomplete)
	if form.Complete {
		status = string(domain.TaskStatusComplete)
	}
	updates.Status = &status

	return id, w.taskUsecase.UpdateTask(ctx, id, updates)
}

func (w *Window) filter(c *gin.Context, form TaskForm) {
	tasks, err := w.taskUsecase.FilterTasks(c.Request.Context(), form.FilterBy, form.FilterValue)
	if err != nil {
		w.reload(c, statusFor(err), form, errorMessage(err), true)
		return
	}

	by := form.FilterBy
	if by == "" {
		by = domain.FilterByCategory
	}
	w.render(c, http.StatusOK, windowView{
		Tasks:    tasks,
		Form:     form,
		Filtered: true,
		Message:  fmt.Sprintf("%d task(s) where %s = %q", len(tasks), by, form.FilterValue),
	})
}

// reload rebuilds the table from every stored task and renders the window
func (w *Window) reload(c *gin.Context, status int, form TaskForm, message string, isError bool) {
	tasks, err := w.taskUsecase.ListTasks(c.Request.Context())
	if err != nil {
		log.Printf("[Window] Reload failed: %v", err)
		status = http.StatusInternalServerError
		message = errorMessage(err)
		isError = true
	}

	w.render(c, status, windowView{
		Tasks:   tasks,
		Form:    form,
		Message: message,
		IsError: isError,
	})
}

func (w *Window) render(c *gin.Context, status int, view windowView) {
	view.Title = w.title
	view.Columns = Columns
	view.FilterFields = domain.FilterFields
	c.Render(status, render.HTML{
		Template: w.tmpl,
		Name:     "window.html",
		Data:     view,
	})
}

func readTaskForm(c *gin.Context) TaskForm {
	return TaskForm{
		Description: c.PostForm("description"),
		Priority:    c.PostForm("priority"),
		Category:    c.PostForm("category"),
		DueDate:     c.PostForm("due_date"),
		Complete:    c.PostForm("complete") != "",
		Selected:    c.PostForm("selected"),
		FilterBy:    c.PostForm("filter_by"),
		FilterValue: c.PostForm("filter_value"),
	}
}

func clearedForm(form TaskForm) TaskForm {
	return TaskForm{
		Selected:    form.Selected,
		FilterBy:    form.FilterBy,
		FilterValue: form.FilterValue,
	}
}

func selectedID(form TaskForm) (int64, error) {
	if strings.TrimSpace(form.Selected) == "" {
		return 0, ErrNoSelection
	}
	return parseTaskID(strings.TrimSpace(form.Selected))
}

func parsePriority(raw string) (int, error) {
	priority, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidPriority, raw)
	}
	return priority, nil
}

func errorMessage(err error) string {
	if statusFor(err) == http.StatusInternalServerError {
		return "storage error: " + err.Error()
	}
	return err.Error()
}
