package comment

import "fmt"

// ValidationError signals a missing required field on a new comment.
type ValidationError struct {
	Field string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}
