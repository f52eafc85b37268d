package handlers

import (
	"github.com/fitstack/fittrack/internal/services"
	"github.com/fitstack/fittrack/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// SessionHandler handles workout session and exercise log routes
type SessionHandler struct {
	Store *services.Store
}

// ListSessions handles GET /api/sessions
// @Summary List own sessions
// @Description List the authenticated user's sessions, most recently started first
// @Tags Sessions
// @Produce json
// @Param limit query int false "Maximum number of results"
// @Success 200 {array} models.WorkoutSession
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sessions [get]
func (h *SessionHandler) ListSessions(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "data.authorization.user")
	}

	sessions, err := h.Store.ListSessions(userID, c.QueryInt("limit"))
	if err != nil {
		return serviceError(c, err, "listSessions")
	}

	return c.Status(fiber.StatusOK).JSON(sessions)
}

// GetSession handles GET /api/sessions/:id
// @Summary Get a session
// @Description Get one of the authenticated user's sessions
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} models.WorkoutSession
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "data.authorization.user")
	}

	session, err := h.Store.GetSession(userID, c.Params("id"))
	if err != nil {
		return serviceError(c, err, "getSession")
	}

	return c.Status(fiber.StatusOK).JSON(session)
}

// StartSession handles POST /api/sessions
// @Summary Start a session
// @Description Open a new workout session, optionally bound to a plan
// @Tags Sessions
// @Accept json
// @Produce json
// @Param body body services.SessionStartInput true "Session fields"
// @Success 201 {object} models.WorkoutSession
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sessions [post]
func (h *SessionHandler) StartSession(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "data.authorization.user")
	}

	var input services.SessionStartInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "data.validation.input")
		}
	}

	session, err := h.Store.StartSession(userID, input)
	if err != nil {
		return serviceError(c, err, "startSession")
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

// UpdateSession handles PATCH /api/sessions/:id
// @Summary Update a session
// @Description Update the notes or feeling of a session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param body body services.SessionUpdateInput true "Session fields"
// @Success 200 {object} models.WorkoutSession
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sessions/{id} [patch]
func (h *SessionHandler) UpdateSession(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "data.authorization.user")
	}

	var input services.SessionUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "data.validation.input")
	}

	session, err := h.Store.UpdateSession(userID, c.Params("id"), input)
	if err != nil {
		return serviceError(c, err, "updateSession")
	}

	return c.Status(fiber.StatusOK).JSON(session)
}

// EndSession handles POST /api/sessions/:id/end
// @Summary End a session
// @Description Complete an active session; a session can only end once
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param body body services.SessionUpdateInput false "Final notes and feeling"
// @Success 200 {object} models.WorkoutSession
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sessions/{id}/end [post]
func (h *SessionHandler) EndSession(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "data.authorization.user")
	}

	var input services.SessionUpdateInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "data.validation.input")
		}
	}

	session, err := h.Store.EndSession(userID, c.Params("id"), input)
	if err != nil {
		return serviceError(c, err, "endSession")
	}

	return c.Status(fiber.StatusOK).JSON(session)
}

// ListLogs handles GET /api/sessions/:id/logs
// @Summary List session logs
// @Description List a session's exercise logs in insertion order
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {array} models.ExerciseLog
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sessions/{id}/logs [get]
func (h *SessionHandler) ListLogs(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "data.authorization.user")
	}

	logs, err := h.Store.ListLogs(userID, c.Params("id"))
	if err != nil {
		return serviceError(c, err, "listLogs")
	}

	return c.Status(fiber.StatusOK).JSON(logs)
}

// CreateLog handles POST /api/sessions/:id/logs
// @Summary Log an exercise
// @Description Record the completed sets of one exercise against a session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param body body services.LogInput true "Log fields"
// @Success 201 {object} models.ExerciseLog
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sessions/{id}/logs [post]
func (h *SessionHandler) CreateLog(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "data.authorization.user")
	}

	var input services.LogInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "data.validation.input")
	}
	if input.ExerciseID == "" {
		return utils.ErrorResponse(c, "exerciseId is required", fiber.StatusBadRequest, "data.validation.input")
	}

	logRow, err := h.Store.CreateLog(userID, c.Params("id"), input)
	if err != nil {
		return serviceError(c, err, "createLog")
	}

	return c.Status(fiber.StatusCreated).JSON(logRow)
}
