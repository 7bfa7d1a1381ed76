package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/tasktracker/api/http/presenter"
	"github.com/artem13815/tasktracker/pkg/auth"
	"github.com/artem13815/tasktracker/pkg/security/jwt"
)

// UserHandler serves the authenticated user's own account.
type UserHandler struct {
	useCase auth.UseCase
}

func NewUserHandler(useCase auth.UseCase) *UserHandler {
	return &UserHandler{useCase: useCase}
}

// @Summary Current user profile
// @Tags    users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /users/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	uid, ok := jwt.UserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "failed to resolve user")
	}
	user, err := h.useCase.Me(c.Context(), uid)
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "user not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load profile")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"id":        user.ID.String(),
		"username":  user.Username,
		"createdAt": user.CreatedAt,
	})
}

// @Summary Delete own account
// @Description Removes the account together with all owned tasks.
// @Tags    users
// @Produce json
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /users/me [delete]
func (h *UserHandler) DeleteMe(c *fiber.Ctx) error {
	uid, ok := jwt.UserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "failed to resolve user")
	}
	if err := h.useCase.DeleteAccount(c.Context(), uid); err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "user not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to delete account")
	}
	return c.SendStatus(http.StatusNoContent)
}
