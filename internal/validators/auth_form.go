package validators

import (
	"context"
	"errors"
	"regexp"
	"unicode/utf8"

	"github.com/MKhiriev/auth-bridge/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldAcceptTerms     = "acceptTerms"
)

// MinPasswordLength applies to login, signup and confirmation fields alike.
const MinPasswordLength = 8

const (
	MsgInvalidEmail      = "Please enter a valid email address"
	MsgPasswordRequired  = "Password is required"
	MsgPasswordTooShort  = "Password must be at least 8 characters"
	MsgPasswordUppercase = "Password must contain at least one uppercase letter"
	MsgPasswordLowercase = "Password must contain at least one lowercase letter"
	MsgPasswordNumber    = "Password must contain at least one number"
	MsgConfirmRequired   = "Please confirm your password"
	MsgPasswordsMismatch = "Passwords do not match"
	MsgTermsNotAccepted  = "You must accept the terms and conditions"
)

var (
	upperRe  = regexp.MustCompile(`[A-Z]`)
	lowerRe  = regexp.MustCompile(`[a-z]`)
	numberRe = regexp.MustCompile(`[0-9]`)
)

// AuthFormValidator validates [models.LoginForm] and [models.SignupForm].
type AuthFormValidator struct {
	validate *validator.Validate
}

// NewAuthFormValidator constructs an AuthFormValidator and returns it as the
// Validator interface.
func NewAuthFormValidator() Validator {
	return &AuthFormValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms of
// both forms are accepted. A rejected form yields a *[FormError]; an
// unsupported type yields [ErrUnsupportedType].
func (v *AuthFormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var (
		errs models.FormErrors
		err  error
	)

	switch value := obj.(type) {
	case models.LoginForm:
		errs, err = v.validateLogin(ctx, value, fields...)
	case *models.LoginForm:
		errs, err = v.validateLogin(ctx, *value, fields...)
	case models.SignupForm:
		errs, err = v.validateSignup(ctx, value, fields...)
	case *models.SignupForm:
		errs, err = v.validateSignup(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}

	if err != nil {
		return err
	}
	if !errs.Empty() {
		return &FormError{Fields: errs}
	}
	return nil
}

// FieldErrors unwraps the per-field messages from an error returned by
// Validate. ok is false for nil and for errors that are not form rejections.
func FieldErrors(err error) (models.FormErrors, bool) {
	var fe *FormError
	if errors.As(err, &fe) {
		return fe.Fields, true
	}
	return models.FormErrors{}, false
}

func (v *AuthFormValidator) validateLogin(ctx context.Context, form models.LoginForm, fields ...string) (models.FormErrors, error) {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	var errs models.FormErrors
	for _, f := range fields {
		switch f {
		case FieldEmail:
			errs.Email = v.checkEmail(ctx, form.Email)
		case FieldPassword:
			if utf8.RuneCountInString(form.Password) < MinPasswordLength {
				errs.Password = MsgPasswordRequired
			}
		default:
			return models.FormErrors{}, ErrUnknownField
		}
	}
	return errs, nil
}

func (v *AuthFormValidator) validateSignup(ctx context.Context, form models.SignupForm, fields ...string) (models.FormErrors, error) {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldConfirmPassword, FieldAcceptTerms}
	}

	var errs models.FormErrors
	for _, f := range fields {
		switch f {
		case FieldEmail:
			errs.Email = v.checkEmail(ctx, form.Email)
		case FieldPassword:
			errs.Password = signupPasswordError(form.Password)
		case FieldConfirmPassword:
			switch {
			case utf8.RuneCountInString(form.ConfirmPassword) < MinPasswordLength:
				errs.ConfirmPassword = MsgConfirmRequired
			case form.ConfirmPassword != form.Password:
				errs.ConfirmPassword = MsgPasswordsMismatch
			}
		case FieldAcceptTerms:
			if !form.AcceptTerms {
				errs.AcceptTerms = MsgTermsNotAccepted
			}
		default:
			return models.FormErrors{}, ErrUnknownField
		}
	}
	return errs, nil
}

func (v *AuthFormValidator) checkEmail(ctx context.Context, email string) string {
	if err := v.validate.VarCtx(ctx, email, "required,email"); err != nil {
		return MsgInvalidEmail
	}
	return ""
}

// signupPasswordError returns the message of the first rule password breaks.
func signupPasswordError(password string) string {
	switch {
	case utf8.RuneCountInString(password) < MinPasswordLength:
		return MsgPasswordTooShort
	case !upperRe.MatchString(password):
		return MsgPasswordUppercase
	case !lowerRe.MatchString(password):
		return MsgPasswordLowercase
	case !numberRe.MatchString(password):
		return MsgPasswordNumber
	default:
		return ""
	}
}
