package request

import (
	"fmt"
	"strconv"

	"github.com/NeuralTrust/TaskAPI/pkg/domain/task"
)

// ListTasksRequest carries the raw query string values.
type ListTasksRequest struct {
	Page  string
	Limit string
	Done  string
}

// ToQuery parses and normalizes the listing query. Unparseable page and
// limit values fall back to their defaults; done must be "true" or "false".
func (r ListTasksRequest) ToQuery() (task.ListQuery, error) {
	q := task.ListQuery{
		Page:  parseIntOr(r.Page, task.DefaultPage),
		Limit: parseIntOr(r.Limit, task.DefaultLimit),
	}
	switch r.Done {
	case "":
	case "true", "false":
		done := r.Done == "true"
		q.Done = &done
	default:
		return task.ListQuery{}, fmt.Errorf("done must be one of: true, false")
	}
	return q.Normalize(), nil
}

func parseIntOr(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
