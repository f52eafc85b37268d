package handlers

import (
	"github.com/fitstack/fittrack/internal/services"
	"github.com/fitstack/fittrack/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// PlanHandler handles workout plan routes
type PlanHandler struct {
	Store *services.Store
}

// ListPlans handles GET /api/plans
// @Summary List own plans
// @Description List the authenticated user's workout plans, newest first
// @Tags Plans
// @Produce json
// @Success 200 {array} models.WorkoutPlan
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /plans [get]
func (h *PlanHandler) ListPlans(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "data.authorization.user")
	}

	plans, err := h.Store.ListPlans(userID)
	if err != nil {
		return serviceError(c, err, "listPlans")
	}

	return c.Status(fiber.StatusOK).JSON(plans)
}

// GetPlan handles GET /api/plans/:id
// @Summary Get a plan
// @Description Get one of the authenticated user's plans
// @Tags Plans
// @Produce json
// @Param id path string true "Plan id"
// @Success 200 {object} models.WorkoutPlan
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /plans/{id} [get]
func (h *PlanHandler) GetPlan(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "data.authorization.user")
	}

	plan, err := h.Store.GetPlan(userID, c.Params("id"))
	if err != nil {
		return serviceError(c, err, "getPlan")
	}

	return c.Status(fiber.StatusOK).JSON(plan)
}

// CreatePlan handles POST /api/plans
// @Summary Create a plan
// @Description Create a workout plan for the authenticated user
// @Tags Plans
// @Accept json
// @Produce json
// @Param body body services.PlanInput true "Plan fields"
// @Success 201 {object} models.WorkoutPlan
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /plans [post]
func (h *PlanHandler) CreatePlan(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "data.authorization.user")
	}

	var input services.PlanInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "data.validation.input")
	}
	if input.Name == nil || *input.Name == "" {
		return utils.ErrorResponse(c, "Plan name is required", fiber.StatusBadRequest, "data.validation.input")
	}

	plan, err := h.Store.CreatePlan(userID, input)
	if err != nil {
		return serviceError(c, err, "createPlan")
	}

	return c.Status(fiber.StatusCreated).JSON(plan)
}

// UpdatePlan handles PUT /api/plans/:id
// @Summary Update a plan
// @Description Partially update one of the authenticated user's plans
// @Tags Plans
// @Accept json
// @Produce json
// @Param id path string true "Plan id"
// @Param body body services.PlanInput true "Plan fields"
// @Success 200 {object} models.WorkoutPlan
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /plans/{id} [put]
func (h *PlanHandler) UpdatePlan(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "data.authorization.user")
	}

	var input services.PlanInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "data.validation.input")
	}

	plan, err := h.Store.UpdatePlan(userID, c.Params("id"), input)
	if err != nil {
		return serviceError(c, err, "updatePlan")
	}

	return c.Status(fiber.StatusOK).JSON(plan)
}

// DeletePlan handles DELETE /api/plans/:id
// @Summary Delete a plan
// @Description Delete a plan and its exercise slots atomically
// @Tags Plans
// @Produce json
// @Param id path string true "Plan id"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /plans/{id} [delete]
func (h *PlanHandler) DeletePlan(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "data.authorization.user")
	}

	if err := h.Store.DeletePlan(userID, c.Params("id")); err != nil {
		return serviceError(c, err, "deletePlan")
	}

	return utils.MutationSuccessResponse(c, 1)
}

// ListPlanExercises handles GET /api/plans/:id/exercises
// @Summary List plan exercises
// @Description List a plan's exercise slots ordered by day and position
// @Tags Plans
// @Produce json
// @Param id path string true "Plan id"
// @Success 200 {array} models.WorkoutPlanExercise
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /plans/{id}/exercises [get]
func (h *PlanHandler) ListPlanExercises(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "data.authorization.user")
	}

	slots, err := h.Store.ListPlanExercises(userID, c.Params("id"))
	if err != nil {
		return serviceError(c, err, "listPlanExercises")
	}

	return c.Status(fiber.StatusOK).JSON(slots)
}

// ReplacePlanExercises handles PUT /api/plans/:id/exercises
// @Summary Replace plan exercises
// @Description Replace a plan's exercise slots atomically
// @Tags Plans
// @Accept json
// @Produce json
// @Param id path string true "Plan id"
// @Param body body []services.PlanExerciseInput true "Exercise slots"
// @Success 200 {array} models.WorkoutPlanExercise
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /plans/{id}/exercises [put]
func (h *PlanHandler) ReplacePlanExercises(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "data.authorization.user")
	}

	var inputs []services.PlanExerciseInput
	if err := c.BodyParser(&inputs); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "data.validation.input")
	}
	for _, in := range inputs {
		if in.ExerciseID == "" {
			return utils.ErrorResponse(c, "Every slot needs an exerciseId", fiber.StatusBadRequest, "data.validation.input")
		}
	}

	slots, err := h.Store.ReplacePlanExercises(userID, c.Params("id"), inputs)
	if err != nil {
		return serviceError(c, err, "replacePlanExercises")
	}

	return c.Status(fiber.StatusOK).JSON(slots)
}
