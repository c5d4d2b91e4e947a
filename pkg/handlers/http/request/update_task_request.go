package request

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/NeuralTrust/TaskAPI/pkg/domain"
	"github.com/NeuralTrust/TaskAPI/pkg/domain/task"
)

type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Done        *bool   `json:"done,omitempty"`
}

// Validate returns domain.ErrNoUpdateFields when no field was supplied.
func (r *UpdateTaskRequest) Validate() error {
	if r.Title == nil && r.Description == nil && r.Done == nil {
		return domain.ErrNoUpdateFields
	}
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		if title == "" {
			return fmt.Errorf("title must have at least 1 character")
		}
		if utf8.RuneCountInString(title) > task.TitleMaxLength {
			return fmt.Errorf("title must have at most %d characters", task.TitleMaxLength)
		}
		r.Title = &title
	}
	if r.Description != nil && utf8.RuneCountInString(*r.Description) > task.DescriptionMaxLength {
		return fmt.Errorf("description must have at most %d characters", task.DescriptionMaxLength)
	}
	return nil
}

func (r *UpdateTaskRequest) ToUpdate() task.Update {
	return task.Update{
		Title:       r.Title,
		Description: r.Description,
		Done:        r.Done,
	}
}
