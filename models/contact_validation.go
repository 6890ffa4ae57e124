package models

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"portfolio-backend/utils"
)

const (
	maxNameLength    = 100
	maxPhoneLength   = 20
	maxMessageLength = 1000
)

var emailPattern = regexp.MustCompile(`^\w+([\.-]?\w+)*@\w+([\.-]?\w+)*(\.\w{2,3})+$`)

// contactRules is the validation schema of a submission: one rule per field,
// each returning an empty string or the message shown to the client. The
// browser form applies the same limits, so the two sides must stay in sync.
var contactRules = []struct {
	field string
	check func(in ContactCreate) string
}{
	{"name", func(in ContactCreate) string {
		if in.Name == "" {
			return "Name is required"
		}
		if utf8.RuneCountInString(in.Name) > maxNameLength {
			return fmt.Sprintf("Name cannot exceed %d characters", maxNameLength)
		}
		return ""
	}},
	{"email", func(in ContactCreate) string {
		if in.Email == "" {
			return "Email is required"
		}
		if !emailPattern.MatchString(in.Email) {
			return "Please provide a valid email address"
		}
		return ""
	}},
	{"phone", func(in ContactCreate) string {
		if in.Phone != "" && utf8.RuneCountInString(in.Phone) > maxPhoneLength {
			return fmt.Sprintf("Phone number cannot exceed %d characters", maxPhoneLength)
		}
		return ""
	}},
	{"message", func(in ContactCreate) string {
		if in.Message == "" {
			return "Message is required"
		}
		if utf8.RuneCountInString(in.Message) > maxMessageLength {
			return fmt.Sprintf("Message cannot exceed %d characters", maxMessageLength)
		}
		return ""
	}},
}

// Normalize trims every field and lower-cases the email address.
func (in *ContactCreate) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Message = strings.TrimSpace(in.Message)
}

// Validate normalizes the input in place and checks it against the schema,
// returning one error per invalid field.
func (in *ContactCreate) Validate() []utils.FieldError {
	in.Normalize()

	var errs []utils.FieldError
	for _, rule := range contactRules {
		if msg := rule.check(*in); msg != "" {
			errs = append(errs, utils.FieldError{Field: rule.field, Message: msg})
		}
	}
	return errs
}
