package delivery

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"todo-desktop/internal/task/domain"
)

func TestWindowShow_RendersTableAndControls(t *testing.T) {
	r, uc := newTestRouter(t)
	seedTask(t, uc, "Buy milk", 2, "errands", "2024-01-01")

	w := doJSON(r, http.MethodGet, "/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected html content type, got %q", ct)
	}

	body := w.Body.String()
	for _, want := range []string{
		"<title>Test Window</title>",
		"<th>ID</th>", "<th>Description</th>", "<th>Priority</th>", "<th>Status</th>", "<th>Category</th>", "<th>Due Date</th>",
		"Buy milk", "errands", "2024-01-01", "incomplete",
		`name="description"`, `name="priority"`, `name="category"`, `name="due_date"`, `name="complete"`,
		`value="add"`, `value="update"`, `value="delete"`, `value="complete"`, `value="filter"`,
		`<option value="category"`, `<option value="due_date"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("window missing %q", want)
		}
	}
}

func TestWindowShow_EscapesDescriptions(t *testing.T) {
	r, uc := newTestRouter(t)
	seedTask(t, uc, "<script>alert(1)</script>", 1, "", "")

	body := doJSON(r, http.MethodGet, "/", "").Body.String()
	if strings.Contains(body, "<script>alert(1)</script>") {
		t.Errorf("description was not escaped")
	}
}

func TestWindowAdd_CreatesAndClearsForm(t *testing.T) {
	r, uc := newTestRouter(t)

	w := postForm(r, url.Values{
		"action":      {ActionAdd},
		"description": {"Buy milk"},
		"priority":    {"2"},
		"category":    {"errands"},
		"due_date":    {"2024-01-01"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	tasks, _ := uc.ListTasks(context.Background())
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].Description != "Buy milk" || tasks[0].Priority != 2 || tasks[0].Status != domain.TaskStatusIncomplete {
		t.Errorf("unexpected task %+v", *tasks[0])
	}

	body := w.Body.String()
	if !strings.Contains(body, fmt.Sprintf("Added task %d", tasks[0].ID)) {
		t.Errorf("expected confirmation message")
	}
	if strings.Contains(body, `name="description" value="Buy milk"`) {
		t.Errorf("expected form to be cleared after add")
	}
}

func TestWindowAdd_NonNumericPriorityShowsMessage(t *testing.T) {
	r, uc := newTestRouter(t)

	w := postForm(r, url.Values{
		"action":      {ActionAdd},
		"description": {"Buy milk"},
		"priority":    {"high"},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, domain.ErrInvalidPriority.Error()) {
		t.Errorf("expected priority message in window")
	}
	if !strings.Contains(body, `name="description" value="Buy milk"`) {
		t.Errorf("expected form input to be kept on error")
	}

	tasks, _ := uc.ListTasks(context.Background())
	if len(tasks) != 0 {
		t.Errorf("expected no task created, got %d", len(tasks))
	}
}

func TestWindowSelectionRequired(t *testing.T) {
	r, uc := newTestRouter(t)
	seedTask(t, uc, "A", 1, "", "")

	for _, action := range []string{ActionUpdate, ActionDelete, ActionComplete} {
		t.Run(action, func(t *testing.T) {
			w := postForm(r, url.Values{"action": {action}, "description": {"changed"}})
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			if !strings.Contains(w.Body.String(), ErrNoSelection.Error()) {
				t.Errorf("expected selection message")
			}
		})
	}

	tasks, _ := uc.ListTasks(context.Background())
	if len(tasks) != 1 || tasks[0].Description != "A" || tasks[0].Status != domain.TaskStatusIncomplete {
		t.Errorf("expected task untouched, got %+v", tasks)
	}
}

func TestWindowUpdate_BlankInputsLeaveFieldsAndCheckboxSetsStatus(t *testing.T) {
	r, uc := newTestRouter(t)
	task := seedTask(t, uc, "A", 1, "B", "2024-01-01")

	w := postForm(r, url.Values{
		"action":   {ActionUpdate},
		"selected": {fmt.Sprint(task.ID)},
		"priority": {"0"},
		"complete": {"1"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	got, _ := uc.GetTask(context.Background(), task.ID)
	want := domain.Task{ID: task.ID, Description: "A", Priority: 0, Status: domain.TaskStatusComplete, Category: "B", DueDate: "2024-01-01"}
	if *got != want {
		t.Errorf("after update = %+v, want %+v", *got, want)
	}

	// unchecked box sets it back to incomplete
	postForm(r, url.Values{"action": {ActionUpdate}, "selected": {fmt.Sprint(task.ID)}})
	got, _ = uc.GetTask(context.Background(), task.ID)
	if got.Status != domain.TaskStatusIncomplete {
		t.Errorf("expected incomplete, got %q", got.Status)
	}
}

func TestWindowDeleteAndComplete(t *testing.T) {
	r, uc := newTestRouter(t)
	keep := seedTask(t, uc, "keep", 1, "", "")
	gone := seedTask(t, uc, "gone", 1, "", "")

	w := postForm(r, url.Values{"action": {ActionComplete}, "selected": {fmt.Sprint(keep.ID)}})
	if w.Code != http.StatusOK {
		t.Fatalf("complete: expected 200, got %d", w.Code)
	}
	w = postForm(r, url.Values{"action": {ActionDelete}, "selected": {fmt.Sprint(gone.ID)}})
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}

	tasks, _ := uc.ListTasks(context.Background())
	if len(tasks) != 1 || tasks[0].ID != keep.ID || tasks[0].Status != domain.TaskStatusComplete {
		t.Errorf("unexpected tasks %+v", tasks)
	}
	if strings.Contains(w.Body.String(), "<td>gone</td>") {
		t.Errorf("expected full reload without deleted row")
	}
}

func TestWindowFilter_ReplacesTableWithoutChangingStore(t *testing.T) {
	r, uc := newTestRouter(t)
	seedTask(t, uc, "Buy milk", 2, "errands", "")
	seedTask(t, uc, "Write report", 1, "work", "")

	w := postForm(r, url.Values{
		"action":       {ActionFilter},
		"filter_by":    {domain.FilterByCategory},
		"filter_value": {"errands"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "<td>Buy milk</td>") || strings.Contains(body, "<td>Write report</td>") {
		t.Errorf("expected only the errands row")
	}
	if !strings.Contains(body, "Show all tasks") {
		t.Errorf("expected link back to the full list")
	}

	tasks, _ := uc.ListTasks(context.Background())
	if len(tasks) != 2 {
		t.Errorf("filter must not change the store, got %d tasks", len(tasks))
	}
}

func TestWindowFilter_UnknownField(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postForm(r, url.Values{"action": {ActionFilter}, "filter_by": {"priority"}, "filter_value": {"1"}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), domain.ErrInvalidFilterField.Error()) {
		t.Errorf("expected filter field message")
	}
}

func TestWindowUnknownAction(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postForm(r, url.Values{"action": {"explode"}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
