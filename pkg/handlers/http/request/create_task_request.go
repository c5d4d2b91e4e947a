package request

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/NeuralTrust/TaskAPI/pkg/domain/task"
)

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

// Validate trims the title and checks the length bounds.
func (r *CreateTaskRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return fmt.Errorf("title must have at least 1 character")
	}
	if utf8.RuneCountInString(r.Title) > task.TitleMaxLength {
		return fmt.Errorf("title must have at most %d characters", task.TitleMaxLength)
	}
	if r.Description != nil && utf8.RuneCountInString(*r.Description) > task.DescriptionMaxLength {
		return fmt.Errorf("description must have at most %d characters", task.DescriptionMaxLength)
	}
	return nil
}
