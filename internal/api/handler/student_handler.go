package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abikefoods/storefront-api/internal/core/domain"
	"github.com/abikefoods/storefront-api/internal/core/ports"
)

// StudentHandler handles the training-class administration endpoints.
type StudentHandler struct {
	service ports.StudentService
}

func NewStudentHandler(service ports.StudentService) *StudentHandler {
	return &StudentHandler{service: service}
}

// List handles GET /v1/students.
//
// @Summary      List students
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listStudentsResponse
// @Router       /v1/students [get]
func (h *StudentHandler) List(c echo.Context) error {
	students := h.service.ListStudents(c.Request().Context())
	out := make([]studentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, toStudentResponse(s))
	}
	return c.JSON(http.StatusOK, listStudentsResponse{Data: out, Total: len(out)})
}

// Add handles POST /v1/students. Adding an email that already exists returns
// the existing record instead of a duplicate.
//
// @Summary      Add a student
// @Tags         students
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addStudentRequest  true  "Student details"
// @Success      201   {object}  studentResponse
// @Router       /v1/students [post]
func (h *StudentHandler) Add(c echo.Context) error {
	var req addStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	student, err := h.service.AddStudent(c.Request().Context(), ports.AddStudentInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  domain.StudentRole(req.Role),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toStudentResponse(student))
}

// Update handles PUT /v1/students/:id.
//
// @Summary      Update a student
// @Tags         students
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Student id"
// @Param        body  body      updateStudentRequest  true  "Fields to merge"
// @Success      200   {object}  studentResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/students/{id} [put]
func (h *StudentHandler) Update(c echo.Context) error {
	var req updateStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	student, err := h.service.UpdateStudent(c.Request().Context(), c.Param("id"), req.patch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStudentResponse(*student))
}

// Delete handles DELETE /v1/students/:id.
//
// @Summary      Delete a student
// @Tags         students
// @Security     BearerAuth
// @Param        id  path  string  true  "Student id"
// @Success      204
// @Router       /v1/students/{id} [delete]
func (h *StudentHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteStudent(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Sync handles POST /v1/students/sync: merges remote registration documents
// into the students partition, at most once per email.
//
// @Summary      Import remote registrations
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  syncResponse
// @Failure      502  {object}  errorResponse
// @Router       /v1/students/sync [post]
func (h *StudentHandler) Sync(c echo.Context) error {
	imported, err := h.service.SyncRegistrations(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "registration store unavailable")
	}
	return c.JSON(http.StatusOK, syncResponse{Imported: imported})
}

// CompleteLesson handles POST /v1/students/:id/lessons/complete.
//
// @Summary      Complete the student's current lesson
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Student id"
// @Success      200  {object}  studentResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/students/{id}/lessons/complete [post]
func (h *StudentHandler) CompleteLesson(c echo.Context) error {
	student, err := h.service.CompleteLesson(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStudentResponse(*student))
}

// ListClasses handles GET /v1/classes.
//
// @Summary      List the class catalog
// @Tags         classes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Class
// @Router       /v1/classes [get]
func (h *StudentHandler) ListClasses(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.ListClasses(c.Request().Context()))
}

// AddClass handles POST /v1/classes.
//
// @Summary      Add a class catalog entry
// @Tags         classes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addClassRequest  true  "Class details"
// @Success      201   {object}  domain.Class
// @Router       /v1/classes [post]
func (h *StudentHandler) AddClass(c echo.Context) error {
	var req addClassRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	class, err := h.service.AddClass(c.Request().Context(), ports.AddClassInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Lessons:     req.Lessons,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, class)
}

// DeleteClass handles DELETE /v1/classes/:id.
//
// @Summary      Delete a class catalog entry
// @Tags         classes
// @Security     BearerAuth
// @Param        id  path  string  true  "Class id"
// @Success      204
// @Router       /v1/classes/{id} [delete]
func (h *StudentHandler) DeleteClass(c echo.Context) error {
	if err := h.service.DeleteClass(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
