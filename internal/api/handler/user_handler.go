package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/abikefoods/storefront-api/internal/core/domain"
	"github.com/abikefoods/storefront-api/internal/core/ports"
)

type updateUserRequest struct {
	Name   *string `json:"name,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Role   *string `json:"role,omitempty" validate:"omitempty,oneof=admin customer"`
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// accountResponse is the back-office view of a user record. The stored
// password hash never crosses the transport boundary.
type accountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func toAccountResponse(u domain.User) accountResponse {
	return accountResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
	}
}

// UserHandler handles back-office account administration.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /v1/users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  accountResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users := h.service.ListUsers(c.Request().Context())
	out := make([]accountResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toAccountResponse(u))
	}
	return c.JSON(http.StatusOK, out)
}

// Update handles PUT /v1/users/:id.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to merge"
// @Success      200   {object}  accountResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patch := ports.UserPatch{Name: req.Name, Phone: req.Phone, Role: req.Role}
	if req.Status != nil {
		status := domain.UserStatus(*req.Status)
		patch.Status = &status
	}

	user, err := h.service.UpdateUser(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountResponse(*user))
}

// Delete handles DELETE /v1/users/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      204
// @Router       /v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
