package validation

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"creon-backend/internal/common/errors"
	"creon-backend/internal/domain"
)

const (
	MaxUsernameLength = 64
	MinUsernameLength = 3
	MaxTitleLength    = 200
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.\-]+$`)

// ValidateUsername проверяет username
func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if len(username) < MinUsernameLength {
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLength)
	}
	if len(username) > MaxUsernameLength {
		return fmt.Errorf("username cannot exceed %d characters", MaxUsernameLength)
	}
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username must contain only letters, numbers, dots, dashes and underscores")
	}
	return nil
}

// Register adds the project specific tags to v and makes field errors
// report JSON names.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	validators := map[string]validator.Func{
		"money": func(fl validator.FieldLevel) bool {
			_, err := domain.ParsePositiveAmount(fl.Field().String())
			return err == nil
		},
		"currency": func(fl validator.FieldLevel) bool {
			return domain.KnownCurrency(strings.ToUpper(fl.Field().String()))
		},
		"wallettype": func(fl validator.FieldLevel) bool {
			return domain.WalletType(fl.Field().String()).Valid()
		},
		"username": func(fl validator.FieldLevel) bool {
			return ValidateUsername(fl.Field().String()) == nil
		},
	}
	for tag, fn := range validators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s validator: %w", tag, err)
		}
	}
	return nil
}

// Setup registers the custom validators on gin's default engine and turns
// on strict decoding of JSON bodies.
func Setup() error {
	binding.EnableDecoderDisallowUnknownFields = true

	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return Register(v)
}

// FromBindingError converts an error returned by gin's ShouldBind* into one
// AppError per offending field.
func FromBindingError(err error) []*errors.AppError {
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		out := make([]*errors.AppError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, errors.NewValidationError(fieldPath(fe), reason(fe)))
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return []*errors.AppError{errors.NewValidationError(field, "must be of type "+typeErr.Type.String())}
	}

	var syntaxErr *json.SyntaxError
	if stderrors.As(err, &syntaxErr) {
		return []*errors.AppError{errors.NewValidationError("body", "malformed JSON")}
	}

	// encoding/json reports unknown fields only as a formatted string.
	if msg := err.Error(); strings.HasPrefix(msg, "json: unknown field ") {
		field := strings.Trim(strings.TrimPrefix(msg, "json: unknown field "), `"`)
		return []*errors.AppError{errors.NewValidationError(field, "unknown field")}
	}

	if err.Error() == "EOF" {
		return []*errors.AppError{errors.NewValidationError("body", "request body is empty")}
	}

	return []*errors.AppError{errors.NewValidationError("body", err.Error())}
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "money":
		return "must be a positive decimal with at most 2 fractional digits"
	case "currency":
		return "must be one of: " + strings.Join(domain.Currencies, " ")
	case "wallettype":
		return "must be one of: metamask phantom tonkeeper"
	case "username":
		return "must be 3-64 letters, numbers, dots, dashes or underscores"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	default:
		return "failed on " + fe.Tag()
	}
}
