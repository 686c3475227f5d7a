package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/clientdesk/pkg/clientsdk"
)

// Field names a client attribute by its wire name.
type Field string

const (
	FieldSharedKey Field = "sharedKey"
	FieldName      Field = "name"
	FieldEmail     Field = "email"
	FieldPhone     Field = "phone"
	FieldStartDate Field = "startDate"
	FieldEndDate   Field = "endDate"
)

// Fields lists every editable field in form order.
var Fields = []Field{
	FieldSharedKey,
	FieldName,
	FieldEmail,
	FieldPhone,
	FieldStartDate,
	FieldEndDate,
}

// RequiredFields are the fields that must be non-blank before submission.
var RequiredFields = []Field{FieldSharedKey, FieldName, FieldEmail}

// ErrUnknownField is returned when a field name is not one of Fields.
var ErrUnknownField = errors.New("unknown field")

// ParseField accepts a wire name ("sharedKey") case-insensitively.
func ParseField(s string) (Field, error) {
	for _, f := range Fields {
		if strings.EqualFold(string(f), strings.TrimSpace(s)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// Draft is the in-progress record of the creation form.
// The zero value is an empty draft.
type Draft struct {
	rec clientsdk.Client
}

// Set stores value verbatim into field.
func (d *Draft) Set(field Field, value string) error {
	p, err := d.ptr(field)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// Get returns the current value of field.
func (d *Draft) Get(field Field) (string, error) {
	p, err := d.ptr(field)
	if err != nil {
		return "", err
	}
	return *p, nil
}

// Client returns the record exactly as entered.
func (d *Draft) Client() clientsdk.Client {
	return d.rec
}

func (d *Draft) ptr(field Field) (*string, error) {
	switch field {
	case FieldSharedKey:
		return &d.rec.SharedKey, nil
	case FieldName:
		return &d.rec.Name, nil
	case FieldEmail:
		return &d.rec.Email, nil
	case FieldPhone:
		return &d.rec.Phone, nil
	case FieldStartDate:
		return &d.rec.StartDate, nil
	case FieldEndDate:
		return &d.rec.EndDate, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, string(field))
	}
}
