package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/walkingguide-web/internal/models"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	otpRegex   = regexp.MustCompile(`^[0-9]{6}$`)
)

// MinPasswordLength is the shortest password accepted before submission
const MinPasswordLength = 6

// DateLayout is the format of date inputs
const DateLayout = "2006-01-02"

// ValidationError represents a single validation error. Message is an i18n key.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Errors is the list of problems found in one form
type Errors []ValidationError

// ByField returns the first message key per field, for inline display
func (e Errors) ByField() map[string]string {
	out := make(map[string]string, len(e))
	for _, err := range e {
		if _, ok := out[err.Field]; !ok {
			out[err.Field] = err.Message
		}
	}
	return out
}

// Validator checks form input before it is sent to the backend
type Validator struct {
	now func() time.Time
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{now: time.Now}
}

// NewValidatorAt creates a validator with a fixed clock
func NewValidatorAt(now func() time.Time) *Validator {
	return &Validator{now: now}
}

// RegistrationForm is the sign-up form
type RegistrationForm struct {
	FullName        string `form:"full_name"`
	Email           string `form:"email"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
}

// ValidateLogin validates the sign-in form
func (v *Validator) ValidateLogin(email, password string) Errors {
	var errors Errors
	errors = appendEmail(errors, "email", email)
	if password == "" {
		errors = append(errors, ValidationError{Field: "password", Message: "validation.required"})
	}
	return errors
}

// ValidateRegistration validates the sign-up form
func (v *Validator) ValidateRegistration(form *RegistrationForm) Errors {
	var errors Errors

	if strings.TrimSpace(form.FullName) == "" {
		errors = append(errors, ValidationError{Field: "full_name", Message: "validation.required"})
	}
	errors = appendEmail(errors, "email", form.Email)
	errors = appendPassword(errors, form.Password, form.ConfirmPassword)

	return errors
}

// ValidatePasswordReset validates the reset-password form
func (v *Validator) ValidatePasswordReset(token, password, confirm string) Errors {
	var errors Errors
	if token == "" {
		errors = append(errors, ValidationError{Field: "token", Message: "validation.required"})
	}
	return appendPassword(errors, password, confirm)
}

// ValidateEmail validates a lone email field (forgot password, resend verification)
func (v *Validator) ValidateEmail(email string) Errors {
	return appendEmail(nil, "email", email)
}

// ValidateOTP validates the one-time code form
func (v *Validator) ValidateOTP(email, otp string) Errors {
	errors := appendEmail(nil, "email", email)
	if !otpRegex.MatchString(otp) {
		errors = append(errors, ValidationError{Field: "otp", Message: "validation.otp", Value: otp})
	}
	return errors
}

// ValidateArticle validates the write/edit article form
func (v *Validator) ValidateArticle(article *models.Article) Errors {
	var errors Errors
	if strings.TrimSpace(article.Title) == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "validation.required"})
	}
	if strings.TrimSpace(stripTags(article.Content)) == "" {
		errors = append(errors, ValidationError{Field: "content", Message: "validation.required"})
	}
	return errors
}

// ValidateComment validates a comment body
func (v *Validator) ValidateComment(content string) Errors {
	var errors Errors
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		errors = append(errors, ValidationError{Field: "content", Message: "validation.required"})
	} else if utf8.RuneCountInString(trimmed) > models.MaxCommentLength {
		errors = append(errors, ValidationError{Field: "content", Message: "validation.too_long"})
	}
	return errors
}

// ValidateBooking validates the booking form; the start date must not be before today
func (v *Validator) ValidateBooking(req *models.BookingRequest) Errors {
	var errors Errors

	if req.Spots < 1 {
		errors = append(errors, ValidationError{Field: "spots", Message: "validation.spots", Value: req.Spots})
	}

	if req.StartDate == "" {
		errors = append(errors, ValidationError{Field: "start_date", Message: "validation.required"})
	} else if start, err := time.Parse(DateLayout, req.StartDate); err != nil {
		errors = append(errors, ValidationError{Field: "start_date", Message: "validation.date", Value: req.StartDate})
	} else {
		now := v.now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if start.Before(today) {
			errors = append(errors, ValidationError{Field: "start_date", Message: "validation.date_past", Value: req.StartDate})
		}
	}

	return errors
}

// ValidateUserInput validates the admin user form. A password is only
// required when creating.
func (v *Validator) ValidateUserInput(input *models.UserInput, creating bool) Errors {
	var errors Errors
	if strings.TrimSpace(input.FullName) == "" {
		errors = append(errors, ValidationError{Field: "full_name", Message: "validation.required"})
	}
	errors = appendEmail(errors, "email", input.Email)
	if !models.ValidRoles[input.Role] {
		errors = append(errors, ValidationError{Field: "role", Message: "validation.required", Value: input.Role})
	}
	if creating || input.Password != "" {
		if len(input.Password) < MinPasswordLength {
			errors = append(errors, ValidationError{Field: "password", Message: "validation.password_short"})
		}
	}
	return errors
}

// ValidateRequired reports every listed field whose value is blank
func (v *Validator) ValidateRequired(values map[string]string, fields ...string) Errors {
	var errors Errors
	for _, field := range fields {
		if strings.TrimSpace(values[field]) == "" {
			errors = append(errors, ValidationError{Field: field, Message: "validation.required"})
		}
	}
	return errors
}

func appendEmail(errors Errors, field, email string) Errors {
	if email == "" {
		return append(errors, ValidationError{Field: field, Message: "validation.required"})
	}
	if !emailRegex.MatchString(email) {
		return append(errors, ValidationError{Field: field, Message: "validation.email", Value: email})
	}
	return errors
}

func appendPassword(errors Errors, password, confirm string) Errors {
	if len(password) < MinPasswordLength {
		errors = append(errors, ValidationError{Field: "password", Message: "validation.password_short"})
	}
	if password != confirm {
		errors = append(errors, ValidationError{Field: "confirm_password", Message: "validation.password_match"})
	}
	return errors
}

var tagRegex = regexp.MustCompile(`<[^>]*>`)

// stripTags removes markup so an editor value of "<p><br></p>" counts as empty
func stripTags(s string) string {
	return strings.ReplaceAll(tagRegex.ReplaceAllString(s, ""), "&nbsp;", "")
}
