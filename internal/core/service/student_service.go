package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/abikefoods/storefront-api/internal/core/domain"
	"github.com/abikefoods/storefront-api/internal/core/ports"
)

// StudentService implements the training-class use cases: local CRUD, the
// import/merge of remote registration documents, and lesson progression.
type StudentService struct {
	repo          ports.StudentRepository
	registrations ports.RegistrationRepository
	classes       ports.ClassRepository
	logger        zerolog.Logger
	now           func() time.Time
}

func NewStudentService(repo ports.StudentRepository, registrations ports.RegistrationRepository, classes ports.ClassRepository, logger zerolog.Logger) *StudentService {
	return &StudentService{
		repo:          repo,
		registrations: registrations,
		classes:       classes,
		logger:        logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (s *StudentService) ListStudents(ctx context.Context) []domain.Student {
	return s.repo.List(ctx)
}

func (s *StudentService) AddStudent(ctx context.Context, input ports.AddStudentInput) (domain.Student, error) {
	if existing, ok := s.repo.FindByEmail(ctx, input.Email); ok {
		s.logger.Debug().Str("email", existing.Email).Msg("student already present")
		return *existing, nil
	}
	student, ok := s.repo.Add(ctx, domain.Student{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
		Role:  input.Role,
	})
	if !ok {
		return domain.Student{}, domain.ErrStorageWrite
	}
	return student, nil
}

func (s *StudentService) UpdateStudent(ctx context.Context, id string, patch ports.StudentPatch) (*domain.Student, error) {
	updated, ok := s.repo.Update(ctx, id, patch)
	if !ok {
		if updated != nil {
			return nil, domain.ErrStorageWrite
		}
		return nil, domain.ErrStudentNotFound
	}
	return updated, nil
}

func (s *StudentService) DeleteStudent(ctx context.Context, id string) error {
	s.repo.Delete(ctx, id)
	return nil
}

// SyncRegistrations merges remote registration documents into the students
// partition. Email is the de-duplication key: a registration whose email is
// already present is skipped, so each external record is imported at most
// once.
func (s *StudentService) SyncRegistrations(ctx context.Context) (int, error) {
	regs, err := s.registrations.List(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("registration store unavailable")
		return 0, err
	}

	imported := 0
	for _, reg := range regs {
		if reg.Email == "" {
			continue
		}
		if _, ok := s.repo.FindByEmail(ctx, reg.Email); ok {
			continue
		}
		lesson := reg.CurrentLesson
		if lesson == 0 {
			lesson = 1
		}
		if _, ok := s.repo.Add(ctx, domain.Student{
			Name:             reg.DisplayName(),
			Email:            reg.Email,
			CurrentLesson:    lesson,
			CompletedLessons: reg.CompletedLessons,
			ExpiresAt:        reg.ExpiresAt,
		}); !ok {
			s.logger.Warn().Str("email", reg.Email).Msg("registration import not persisted")
			continue
		}
		imported++
	}

	if imported > 0 {
		s.logger.Info().Int("imported", imported).Msg("registrations merged into students")
	}
	return imported, nil
}

// CompleteLesson records the student's current lesson as done and advances to
// the next one. Expired registrations are rejected; expiry is evaluated
// against now, never by deleting the record.
func (s *StudentService) CompleteLesson(ctx context.Context, id string) (*domain.Student, error) {
	students := s.repo.List(ctx)
	var current *domain.Student
	for i := range students {
		if students[i].ID == id {
			current = &students[i]
			break
		}
	}
	if current == nil {
		return nil, domain.ErrStudentNotFound
	}
	if !current.ActiveAt(s.now()) {
		return nil, domain.ErrRegistrationExpired
	}

	completed := append(append([]int{}, current.CompletedLessons...), current.CurrentLesson)
	next := current.CurrentLesson + 1
	updated, ok := s.repo.Update(ctx, id, ports.StudentPatch{
		CompletedLessons: &completed,
		CurrentLesson:    &next,
	})
	if !ok {
		if updated != nil {
			return nil, domain.ErrStorageWrite
		}
		return nil, domain.ErrStudentNotFound
	}
	s.logger.Info().Str("student_id", id).Int("lesson", current.CurrentLesson).Msg("lesson completed")
	return updated, nil
}

func (s *StudentService) ListClasses(ctx context.Context) []domain.Class {
	return s.classes.List(ctx)
}

func (s *StudentService) AddClass(ctx context.Context, input ports.AddClassInput) (domain.Class, error) {
	class, ok := s.classes.Add(ctx, domain.Class{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Lessons:     input.Lessons,
	})
	if !ok {
		return domain.Class{}, domain.ErrStorageWrite
	}
	return class, nil
}

func (s *StudentService) DeleteClass(ctx context.Context, id string) error {
	s.classes.Delete(ctx, id)
	return nil
}
