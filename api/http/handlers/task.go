package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/tasktracker/api/http/presenter"
	"github.com/artem13815/tasktracker/pkg/security/jwt"
	"github.com/artem13815/tasktracker/pkg/task"
)

type TaskHandler struct {
	uc task.UseCase
}

func NewTaskHandler(uc task.UseCase) *TaskHandler { return &TaskHandler{uc: uc} }

type taskResponse struct {
	ID        string `json:"id"`
	OwnerID   string `json:"ownerId"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

func toTaskResponse(t task.Task) taskResponse {
	return taskResponse{
		ID:        t.ID.String(),
		OwnerID:   t.OwnerID.String(),
		Title:     t.Title,
		Completed: t.Completed,
	}
}

type createTaskRequest struct {
	Title string `json:"title"`
}

// @Summary Create task
// @Tags    tasks
// @Accept  json
// @Produce json
// @Param   input body createTaskRequest true "task payload"
// @Security BearerAuth
// @Success 201 {object} taskResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /tasks [post]
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	uid, ok := jwt.UserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "failed to resolve user")
	}
	var req createTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	t, err := h.uc.Create(c.Context(), uid, req.Title)
	if err != nil {
		if errors.Is(err, task.ErrTitleRequired) {
			return presenter.Error(c, http.StatusBadRequest, "title is required")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to create task")
	}
	return presenter.JSON(c, http.StatusCreated, toTaskResponse(t))
}

// @Summary List own tasks
// @Tags    tasks
// @Produce json
// @Param   limit query int false "page size (default 50)"
// @Param   offset query int false "page offset"
// @Security BearerAuth
// @Success 200 {array} taskResponse
// @Router  /tasks [get]
func (h *TaskHandler) List(c *fiber.Ctx) error {
	uid, ok := jwt.UserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "failed to resolve user")
	}
	limit, offset := parseLimitOffset(c, 50)
	ts, err := h.uc.List(c.Context(), uid, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list tasks")
	}
	res := make([]taskResponse, 0, len(ts))
	for _, t := range ts {
		res = append(res, toTaskResponse(t))
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// @Summary Get task by ID
// @Tags    tasks
// @Produce json
// @Param   id path string true "task ID (UUID)"
// @Security BearerAuth
// @Success 200 {object} taskResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /tasks/{id} [get]
func (h *TaskHandler) GetByID(c *fiber.Ctx) error {
	uid, ok := jwt.UserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "failed to resolve user")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid task id")
	}
	t, err := h.uc.GetByID(c.Context(), uid, id)
	if err != nil {
		if errors.Is(err, task.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "task not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to get task")
	}
	return presenter.JSON(c, http.StatusOK, toTaskResponse(t))
}

type updateTaskRequest struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// @Summary Update task
// @Tags    tasks
// @Accept  json
// @Produce json
// @Param   id path string true "task ID (UUID)"
// @Param   input body updateTaskRequest true "new title and completion state"
// @Security BearerAuth
// @Success 200 {object} taskResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /tasks/{id} [put]
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	uid, ok := jwt.UserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "failed to resolve user")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid task id")
	}
	var req updateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	t, err := h.uc.Update(c.Context(), uid, id, req.Title, req.Completed)
	if err != nil {
		switch {
		case errors.Is(err, task.ErrTitleRequired):
			return presenter.Error(c, http.StatusBadRequest, "title is required")
		case errors.Is(err, task.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "task not found")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to update task")
		}
	}
	return presenter.JSON(c, http.StatusOK, toTaskResponse(t))
}

// @Summary Delete task
// @Tags    tasks
// @Produce json
// @Param   id path string true "task ID (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	uid, ok := jwt.UserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "failed to resolve user")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid task id")
	}
	if err := h.uc.Delete(c.Context(), uid, id); err != nil {
		if errors.Is(err, task.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "task not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to delete task")
	}
	return c.SendStatus(http.StatusNoContent)
}
