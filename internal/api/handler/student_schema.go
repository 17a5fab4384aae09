package handler

import (
	"time"

	"github.com/abikefoods/storefront-api/internal/core/domain"
	"github.com/abikefoods/storefront-api/internal/core/ports"
)

type addStudentRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role,omitempty" validate:"omitempty,oneof=student instructor admin"`
}

type updateStudentRequest struct {
	Name          *string `json:"name,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Role          *string `json:"role,omitempty" validate:"omitempty,oneof=student instructor admin"`
	Status        *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	CurrentLesson *int    `json:"current_lesson,omitempty" validate:"omitempty,gt=0"`
}

func (r updateStudentRequest) patch() ports.StudentPatch {
	patch := ports.StudentPatch{
		Name:          r.Name,
		Phone:         r.Phone,
		CurrentLesson: r.CurrentLesson,
	}
	if r.Role != nil {
		role := domain.StudentRole(*r.Role)
		patch.Role = &role
	}
	if r.Status != nil {
		status := domain.StudentStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}

type studentResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone,omitempty"`
	Role             string     `json:"role"`
	Status           string     `json:"status"`
	CurrentLesson    int        `json:"current_lesson"`
	CompletedLessons []int      `json:"completed_lessons,omitempty"`
	Active           bool       `json:"active"`
	CreatedAt        time.Time  `json:"created_at"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty"`
}

func toStudentResponse(s domain.Student) studentResponse {
	return studentResponse{
		ID:               s.ID,
		Name:             s.Name,
		Email:            s.Email,
		Phone:            s.Phone,
		Role:             string(s.Role),
		Status:           string(s.Status),
		CurrentLesson:    s.CurrentLesson,
		CompletedLessons: s.CompletedLessons,
		Active:           s.ActiveAt(time.Now().UTC()),
		CreatedAt:        s.CreatedAt,
		ExpiresAt:        s.ExpiresAt,
	}
}

type listStudentsResponse struct {
	Data  []studentResponse `json:"data"`
	Total int               `json:"total"`
}

type syncResponse struct {
	Imported int `json:"imported"`
}

type addClassRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price" validate:"gte=0"`
	Lessons     int     `json:"lessons" validate:"gt=0"`
}
