// Package validate checks request payloads before they reach the store.
// Validation is pure: no database access, no side effects.
package validate

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pkordes/travel-agency/backend/internal/domain"
)

// Violation describes one failed rule on one field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations is the ordered list of failed rules for a payload.
// It satisfies error and unwraps to domain.ErrValidation, so services can
// return it directly and handlers can match it with errors.Is / errors.As.
type Violations []Violation

func (v Violations) Error() string {
	msgs := make([]string, len(v))
	for i, violation := range v {
		msgs[i] = violation.Message
	}
	return domain.ErrValidation.Error() + ": " + strings.Join(msgs, "; ")
}

func (v Violations) Unwrap() error {
	return domain.ErrValidation
}

// rule is a single check on a single field. Rules are evaluated
// independently, so one field can report several violations.
type rule struct {
	field   string
	tag     string
	message string
	value   func(domain.Client) string
}

func firstName(c domain.Client) string { return c.FirstName }
func lastName(c domain.Client) string  { return c.LastName }
func email(c domain.Client) string     { return c.Email }
func telephone(c domain.Client) string { return c.Telephone }
func pesel(c domain.Client) string     { return c.Pesel }

// clientRules is evaluated top to bottom; the order of the returned
// violations follows it. An empty email or PESEL also fails the syntax and
// length rules, while the digits rule accepts the empty string.
var clientRules = []rule{
	{"firstName", "notblank", "First name is required", firstName},
	{"firstName", "max=50", "First name cannot exceed 50 characters", firstName},

	{"lastName", "notblank", "Last name is required", lastName},
	{"lastName", "max=50", "Last name cannot exceed 50 characters", lastName},

	{"email", "notblank", "Email is required", email},
	{"email", "email", "Invalid email format", email},
	{"email", "max=100", "Email cannot exceed 100 characters", email},

	{"telephone", "notblank", "Telephone is required", telephone},
	{"telephone", "max=20", "Telephone cannot exceed 20 characters", telephone},

	{"pesel", "notblank", "PESEL is required", pesel},
	{"pesel", "len=11", "PESEL must be 11 characters", pesel},
	{"pesel", "omitempty,number", "PESEL can only contain numbers", pesel},
}

var engine = newEngine()

func newEngine() *validator.Validate {
	v := validator.New()
	// Whitespace-only strings count as empty.
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic("validate: register notblank: " + err.Error())
	}
	return v
}

// Client validates a client payload and returns every violated rule.
// A nil result means the client may be persisted.
func Client(c domain.Client) Violations {
	var out Violations
	for _, r := range clientRules {
		if err := engine.Var(r.value(c), r.tag); err != nil {
			out = append(out, Violation{Field: r.field, Message: r.message})
		}
	}
	return out
}
