package kv

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abikefoods/storefront-api/internal/core/domain"
	"github.com/abikefoods/storefront-api/internal/core/ports"
)

// StudentRepository owns the students partition.
type StudentRepository struct {
	store Store
}

func NewStudentRepository(store Store) *StudentRepository {
	return &StudentRepository{store: store}
}

func (r *StudentRepository) List(ctx context.Context) []domain.Student {
	return Read(ctx, r.store, KeyStudents, []domain.Student{})
}

// FindByEmail locates a student by email, case-insensitively. Email is the
// de-duplication key for external registration imports.
func (r *StudentRepository) FindByEmail(ctx context.Context, email string) (*domain.Student, bool) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, s := range r.List(ctx) {
		if strings.ToLower(s.Email) == email {
			clone := s
			return &clone, true
		}
	}
	return nil, false
}

func (r *StudentRepository) Add(ctx context.Context, s domain.Student) (domain.Student, bool) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Role == "" {
		s.Role = domain.RoleStudent
	}
	if s.Status == "" {
		s.Status = domain.StudentActive
	}
	if s.CurrentLesson == 0 {
		s.CurrentLesson = 1
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	students := append(r.List(ctx), s)
	return s, Write(ctx, r.store, KeyStudents, students)
}

func (r *StudentRepository) Update(ctx context.Context, id string, patch ports.StudentPatch) (*domain.Student, bool) {
	students := r.List(ctx)
	for i := range students {
		if students[i].ID != id {
			continue
		}
		if patch.Name != nil {
			students[i].Name = *patch.Name
		}
		if patch.Phone != nil {
			students[i].Phone = *patch.Phone
		}
		if patch.Role != nil {
			students[i].Role = *patch.Role
		}
		if patch.Status != nil {
			students[i].Status = *patch.Status
		}
		if patch.CurrentLesson != nil {
			students[i].CurrentLesson = *patch.CurrentLesson
		}
		if patch.CompletedLessons != nil {
			students[i].CompletedLessons = *patch.CompletedLessons
		}
		if patch.ExpiresAt != nil {
			students[i].ExpiresAt = *patch.ExpiresAt
		}
		clone := students[i]
		if !Write(ctx, r.store, KeyStudents, students) {
			return &clone, false
		}
		return &clone, true
	}
	return nil, false
}

func (r *StudentRepository) Delete(ctx context.Context, id string) bool {
	students := r.List(ctx)
	kept := students[:0]
	for _, s := range students {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	return Write(ctx, r.store, KeyStudents, kept)
}
