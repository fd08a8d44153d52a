package validators

import (
	"errors"

	"github.com/MKhiriev/auth-bridge/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidForm = errors.New("invalid form")
)

// FormError carries the per-field messages of a rejected form.
// It matches [ErrInvalidForm] with errors.Is.
type FormError struct {
	Fields models.FormErrors
}

func (e *FormError) Error() string {
	return ErrInvalidForm.Error()
}

func (e *FormError) Is(target error) bool {
	return target == ErrInvalidForm
}
