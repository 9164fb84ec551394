package domain

import "errors"

// Domain errors surfaced by mutators. Callers match with errors.Is and turn
// them into user-facing notifications; none of them leaves partial state.
var (
	ErrNotFound               = errors.New("record not found")
	ErrEmptyName              = errors.New("name must not be empty")
	ErrDuplicateCategory      = errors.New("category already exists")
	ErrCategoryInUse          = errors.New("category is referenced by products")
	ErrInvalidBackupFormat    = errors.New("invalid backup format")
	ErrPermissionDenied       = errors.New("permission denied")
	ErrUnsupportedEnvironment = errors.New("directory export not supported")
	ErrNotConfirmed           = errors.New("operation not confirmed")
)

// CategoryInUseError carries the number of products still referencing a
// category whose deletion was refused.
type CategoryInUseError struct {
	Name  string
	Count int
}

func (e *CategoryInUseError) Error() string {
	return ErrCategoryInUse.Error()
}

// Unwrap makes errors.Is(err, ErrCategoryInUse) hold.
func (e *CategoryInUseError) Unwrap() error {
	return ErrCategoryInUse
}
