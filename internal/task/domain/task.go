package domain

// TaskStatus represents the completion state of a task
type TaskStatus string

const (
	TaskStatusIncomplete TaskStatus = "incomplete"
	TaskStatusComplete   TaskStatus = "complete"
)

// Valid reports whether s is one of the known statuses
func (s TaskStatus) Valid() bool {
	return s == TaskStatusIncomplete || s == TaskStatusComplete
}

// Filter fields accepted by FindByField
const (
	FilterByCategory = "category"
	FilterByDueDate  = "due_date"
)

// FilterFields lists the columns a task list can be filtered on, in display order
var FilterFields = []string{FilterByCategory, FilterByDueDate}

// ValidFilterField reports whether field names a filterable column
func ValidFilterField(field string) bool {
	return field == FilterByCategory || field == FilterByDueDate
}

// Task represents one to-do record
type Task struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Description string     `json:"description" gorm:"type:text;not null"`
	Priority    int        `json:"priority" gorm:"not null"`
	Status      TaskStatus `json:"status" gorm:"type:text;not null;default:'incomplete'"`
	Category    string     `json:"category" gorm:"type:text"`
	DueDate     string     `json:"due_date" gorm:"column:due_date;type:text"` // YYYY-MM-DD, stored as entered
}

// TableName keeps the table name stable across drivers
func (Task) TableName() string {
	return "tasks"
}

// TaskPatch carries a partial update. A nil field is left unchanged; a
// non-nil field is written even when it holds the zero value.
type TaskPatch struct {
	Description *string
	Priority    *int
	Category    *string
	DueDate     *string
	Status      *TaskStatus
}

// IsEmpty reports whether the patch changes nothing
func (p TaskPatch) IsEmpty() bool {
	return p.Description == nil && p.Priority == nil && p.Category == nil && p.DueDate == nil && p.Status == nil
}

// Columns returns the column/value pairs to write
func (p TaskPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.Priority != nil {
		cols["priority"] = *p.Priority
	}
	if p.Category != nil {
		cols["category"] = *p.Category
	}
	if p.DueDate != nil {
		cols["due_date"] = *p.DueDate
	}
	if p.Status != nil {
		cols["status"] = string(*p.Status)
	}
	return cols
}
