package request

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/NeuralTrust/TaskAPI/pkg/domain/user"
)

type CreateUserRequest struct {
	Name string `json:"name"`
}

func (r *CreateUserRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if utf8.RuneCountInString(r.Name) > user.NameMaxLength {
		return fmt.Errorf("name must have at most %d characters", user.NameMaxLength)
	}
	return nil
}
