package handlers

import (
	"github.com/fitstack/fittrack/internal/services"
	"github.com/fitstack/fittrack/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// ProfileHandler handles profile routes
type ProfileHandler struct {
	Store *services.Store
}

// GetProfile handles GET /api/profile
// @Summary Get own profile
// @Description Get the authenticated user's profile
// @Tags Profile
// @Produce json
// @Success 200 {object} models.Profile
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "data.authorization.user")
	}

	profile, err := h.Store.GetProfile(userID)
	if err != nil {
		return serviceError(c, err, "getProfile")
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

// PutProfile handles PUT /api/profile
// @Summary Create or update own profile
// @Description Upsert the authenticated user's profile with a partial payload
// @Tags Profile
// @Accept json
// @Produce json
// @Param body body services.ProfileInput true "Profile fields"
// @Success 200 {object} models.Profile
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /profile [put]
func (h *ProfileHandler) PutProfile(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "data.authorization.user")
	}

	var input services.ProfileInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "data.validation.input")
	}

	profile, err := h.Store.UpsertProfile(userID, input)
	if err != nil {
		return serviceError(c, err, "putProfile")
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

// ResetProfile handles POST /api/profile/reset
// @Summary Reset account data
// @Description Delete all of the authenticated user's data in dependency order, atomically
// @Tags Profile
// @Produce json
// @Success 200 {object} services.ResetResult
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /profile/reset [post]
func (h *ProfileHandler) ResetProfile(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "data.authorization.user")
	}

	result, err := h.Store.ResetAccount(userID)
	if err != nil {
		return serviceError(c, err, "resetProfile")
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
