package ports

import (
	"context"
	"time"

	"github.com/abikefoods/storefront-api/internal/core/domain"
)

// StudentPatch carries the fields an update may merge into a student record.
// Nil fields are left untouched. ExpiresAt is a double pointer so an update
// can distinguish "leave alone" (nil) from "clear" (*nil).
type StudentPatch struct {
	Name             *string
	Phone            *string
	Role             *domain.StudentRole
	Status           *domain.StudentStatus
	CurrentLesson    *int
	CompletedLessons *[]int
	ExpiresAt        **time.Time
}

// StudentRepository defines persistence operations over the students
// partition. Update reports not-found as (nil, false) and a rejected write as
// (record, false).
type StudentRepository interface {
	List(ctx context.Context) []domain.Student
	FindByEmail(ctx context.Context, email string) (*domain.Student, bool)
	Add(ctx context.Context, s domain.Student) (domain.Student, bool)
	Update(ctx context.Context, id string, patch StudentPatch) (*domain.Student, bool)
	Delete(ctx context.Context, id string) bool
}

// RegistrationRepository reads training-class registrations from the remote
// document store.
type RegistrationRepository interface {
	List(ctx context.Context) ([]domain.Registration, error)
}

// AddClassInput carries the data for a new training-class catalog entry.
type AddClassInput struct {
	Title       string
	Description string
	Price       float64
	Lessons     int
}

// AddStudentInput carries the data for a manually created student.
type AddStudentInput struct {
	Name  string
	Email string
	Phone string
	Role  domain.StudentRole
}

// StudentService defines the training-class use cases.
type StudentService interface {
	ListStudents(ctx context.Context) []domain.Student
	AddStudent(ctx context.Context, input AddStudentInput) (domain.Student, error)
	UpdateStudent(ctx context.Context, id string, patch StudentPatch) (*domain.Student, error)
	DeleteStudent(ctx context.Context, id string) error
	// SyncRegistrations merges remote registration records into the students
	// partition, at most once per email. Returns the number imported.
	SyncRegistrations(ctx context.Context) (int, error)
	// CompleteLesson records the student's current lesson as done and
	// advances to the next one. Rejected for expired registrations.
	CompleteLesson(ctx context.Context, id string) (*domain.Student, error)
	ListClasses(ctx context.Context) []domain.Class
	AddClass(ctx context.Context, input AddClassInput) (domain.Class, error)
	DeleteClass(ctx context.Context, id string) error
}
