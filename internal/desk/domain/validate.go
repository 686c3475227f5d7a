package domain

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aussiebroadwan/clientdesk/pkg/clientsdk"
)

var (
	// ErrMissingRequired means a required field is empty.
	ErrMissingRequired = errors.New("missing required fields")

	// ErrInvalidEmail means the email does not look like local@domain.tld.
	ErrInvalidEmail = errors.New("invalid email address")
)

// ValidationError reports why a draft cannot be submitted.
// Reason is ErrMissingRequired or ErrInvalidEmail.
type ValidationError struct {
	Reason error
	Fields []Field
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = string(f)
	}
	return e.Reason.Error() + ": " + strings.Join(names, ", ")
}

func (e *ValidationError) Unwrap() error { return e.Reason }

// notSpaceOrAt excludes "@" and every Unicode space, including NBSP, the
// Zs/Zl/Zp separators, vertical tab and the BOM.
const notSpaceOrAt = `[^\s\v\p{Z}\x{FEFF}@]`

var emailPattern = regexp.MustCompile(`^` + notSpaceOrAt + `+@` + notSpaceOrAt + `+\.` + notSpaceOrAt + `+$`)

// IsValidEmail reports whether s has the shape local@domain.tld with no
// whitespace and exactly one "@".
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// draftRules mirrors the fields that carry rules.
type draftRules struct {
	SharedKey string `validate:"required"`
	Name      string `validate:"required"`
	Email     string `validate:"required,emailshape"`
}

var fieldByStruct = map[string]Field{
	"SharedKey": FieldSharedKey,
	"Name":      FieldName,
	"Email":     FieldEmail,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks c in two stages: every required field must be non-empty,
// then the email must be well formed. Values are checked as given, so a
// field holding only spaces is present. It returns nil or a *ValidationError.
func Validate(c clientsdk.Client) error {
	err := validate.Struct(draftRules{
		SharedKey: c.SharedKey,
		Name:      c.Name,
		Email:     c.Email,
	})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	var missing, malformed []Field
	for _, fe := range verrs {
		f := fieldByStruct[fe.StructField()]
		if fe.Tag() == "required" {
			missing = append(missing, f)
		} else {
			malformed = append(malformed, f)
		}
	}

	if len(missing) > 0 {
		return &ValidationError{Reason: ErrMissingRequired, Fields: missing}
	}
	return &ValidationError{Reason: ErrInvalidEmail, Fields: malformed}
}
