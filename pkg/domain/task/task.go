package task

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	TitleMaxLength       = 200
	DescriptionMaxLength = 1000

	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type Task struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      string    `json:"user_id" gorm:"not null;index"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	Description *string   `json:"description,omitempty" gorm:"size:1000"`
	Done        bool      `json:"done" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t Task) TableName() string {
	return "public.tasks"
}

// Update is a partial update; nil fields are left untouched.
type Update struct {
	Title       *string
	Description *string
	Done        *bool
}

func (u Update) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Done == nil
}

// Columns maps the set fields to their column names.
func (u Update) Columns() map[string]interface{} {
	columns := make(map[string]interface{}, 3)
	if u.Title != nil {
		columns["title"] = *u.Title
	}
	if u.Description != nil {
		columns["description"] = *u.Description
	}
	if u.Done != nil {
		columns["done"] = *u.Done
	}
	return columns
}

// ListQuery selects one page of an owner's tasks.
type ListQuery struct {
	Done  *bool
	Page  int
	Limit int
}

// Normalize applies the paging defaults and bounds: page >= 1 and
// 1 <= limit <= MaxLimit.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit == 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit < 1 {
		q.Limit = 1
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	return q
}

func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

type PageMeta struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
	HasNextPage bool  `json:"has_next_page"`
	HasPrevPage bool  `json:"has_prev_page"`
}

type Page struct {
	Data []Task   `json:"data"`
	Meta PageMeta `json:"meta"`
}

// NewPage builds the paginated response for a normalized query.
func NewPage(tasks []Task, q ListQuery, total int64) *Page {
	if tasks == nil {
		tasks = []Task{}
	}
	totalPages := 0
	if q.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(q.Limit)))
	}
	return &Page{
		Data: tasks,
		Meta: PageMeta{
			Page:        q.Page,
			Limit:       q.Limit,
			Total:       total,
			TotalPages:  totalPages,
			HasNextPage: q.Page < totalPages,
			HasPrevPage: q.Page > 1,
		},
	}
}
