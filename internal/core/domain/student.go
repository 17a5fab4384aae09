package domain

import (
	"errors"
	"strings"
	"time"
)

// StudentRole is the role a student record carries inside the training class.
type StudentRole string

const (
	RoleStudent    StudentRole = "student"
	RoleInstructor StudentRole = "instructor"
	RoleAdminStaff StudentRole = "admin"
)

// StudentStatus is the administrative state of a student record.
type StudentStatus string

const (
	StudentActive   StudentStatus = "active"
	StudentInactive StudentStatus = "inactive"
)

var ErrStudentNotFound = errors.New("student not found")
var ErrRegistrationExpired = errors.New("registration expired")

// Student is a training-class participant. Email is the de-duplication key
// when importing from an external registration record.
type Student struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Email            string        `json:"email"`
	Phone            string        `json:"phone,omitempty"`
	Role             StudentRole   `json:"role"`
	Status           StudentStatus `json:"status"`
	CurrentLesson    int           `json:"current_lesson"`
	CompletedLessons []int         `json:"completed_lessons,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	ExpiresAt        *time.Time    `json:"expires_at,omitempty"`
}

// ActiveAt reports whether the registration is usable at the given instant.
// Expiry is evaluated at read time; expired records are never deleted.
func (s Student) ActiveAt(now time.Time) bool {
	if s.Status != StudentActive {
		return false
	}
	if s.ExpiresAt == nil {
		return true
	}
	return s.ExpiresAt.After(now)
}

// Registration is an external registration document (training-class sign-up)
// held in the remote document store. It is merged into the students partition
// at most once per email.
type Registration struct {
	Email            string     `json:"email" bson:"email"`
	Name             string     `json:"name,omitempty" bson:"name,omitempty"`
	CurrentLesson    int        `json:"current_lesson,omitempty" bson:"current_lesson,omitempty"`
	CompletedLessons []int      `json:"completed_lessons,omitempty" bson:"completed_lessons,omitempty"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty" bson:"expires_at,omitempty"`
	PaidAt           *time.Time `json:"paid_at,omitempty" bson:"paid_at,omitempty"`
}

// DisplayName returns the registration's name, falling back to the local
// part of the email address.
func (r Registration) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	if at := strings.IndexByte(r.Email, '@'); at > 0 {
		return r.Email[:at]
	}
	return r.Email
}
