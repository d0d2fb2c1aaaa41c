package goal

import (
	"errors"
	"fmt"
)

// ValidationKind enumerates user-correctable input problems.
type ValidationKind int

const (
	// EmptyName is reported when a name is blank after trimming.
	EmptyName ValidationKind = iota
	// DuplicateName is reported when a name collides, ignoring case, with
	// another goal in the collection.
	DuplicateName
)

var (
	ErrEmptyName     = errors.New("goal name cannot be empty")
	ErrDuplicateName = errors.New("goal already exists")
)

// ValidationError is returned when a goal record would break a collection
// invariant. The operation that produced it left state unchanged.
type ValidationError struct {
	Kind ValidationKind
	Name string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case DuplicateName:
		return fmt.Sprintf("goal %q already exists", e.Name)
	default:
		return ErrEmptyName.Error()
	}
}

// Is implements errors.Is support.
func (e *ValidationError) Is(target error) bool {
	switch e.Kind {
	case EmptyName:
		return target == ErrEmptyName
	case DuplicateName:
		return target == ErrDuplicateName
	}
	return false
}
