package handlers

import (
	"github.com/fitstack/fittrack/internal/services"
	"github.com/fitstack/fittrack/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// ExerciseHandler handles exercise library routes
type ExerciseHandler struct {
	Store *services.Store
}

// ListExercises handles GET /api/exercises
// @Summary List exercises
// @Description List the exercise library, optionally filtered
// @Tags Exercises
// @Produce json
// @Param q query string false "Name substring filter"
// @Param difficulty query string false "Difficulty filter"
// @Param muscleGroups query string false "Muscle group filter, repeatable or comma-separated"
// @Param limit query int false "Maximum number of results"
// @Success 200 {array} models.Exercise
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /exercises [get]
func (h *ExerciseHandler) ListExercises(c *fiber.Ctx) error {
	filter := services.ExerciseFilter{
		NameLike:     c.Query("q"),
		Difficulty:   c.Query("difficulty"),
		MuscleGroups: parseCSVQuery(c, "muscleGroups"),
		Limit:        c.QueryInt("limit"),
	}

	exercises, err := h.Store.ListExercises(filter)
	if err != nil {
		return serviceError(c, err, "listExercises")
	}

	return c.Status(fiber.StatusOK).JSON(exercises)
}

// GetExercise handles GET /api/exercises/:id
// @Summary Get an exercise
// @Description Get a single exercise by id
// @Tags Exercises
// @Produce json
// @Param id path string true "Exercise id"
// @Success 200 {object} models.Exercise
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /exercises/{id} [get]
func (h *ExerciseHandler) GetExercise(c *fiber.Ctx) error {
	exercise, err := h.Store.GetExercise(c.Params("id"))
	if err != nil {
		return serviceError(c, err, "getExercise")
	}

	return c.Status(fiber.StatusOK).JSON(exercise)
}

// CreateExercise handles POST /api/exercises
// @Summary Create an exercise
// @Description Add an exercise to the library (admin only)
// @Tags Exercises
// @Accept json
// @Produce json
// @Param body body services.ExerciseInput true "Exercise fields"
// @Success 201 {object} models.Exercise
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /exercises [post]
func (h *ExerciseHandler) CreateExercise(c *fiber.Ctx) error {
	var input services.ExerciseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "data.validation.input")
	}
	if input.Name == nil || *input.Name == "" {
		return utils.ErrorResponse(c, "Exercise name is required", fiber.StatusBadRequest, "data.validation.input")
	}

	exercise, err := h.Store.CreateExercise(input)
	if err != nil {
		return serviceError(c, err, "createExercise")
	}

	return c.Status(fiber.StatusCreated).JSON(exercise)
}

// UpdateExercise handles PUT /api/exercises/:id
// @Summary Update an exercise
// @Description Partially update a library exercise (admin only)
// @Tags Exercises
// @Accept json
// @Produce json
// @Param id path string true "Exercise id"
// @Param body body services.ExerciseInput true "Exercise fields"
// @Success 200 {object} models.Exercise
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /exercises/{id} [put]
func (h *ExerciseHandler) UpdateExercise(c *fiber.Ctx) error {
	var input services.ExerciseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "data.validation.input")
	}

	exercise, err := h.Store.UpdateExercise(c.Params("id"), input)
	if err != nil {
		return serviceError(c, err, "updateExercise")
	}

	return c.Status(fiber.StatusOK).JSON(exercise)
}

// DeleteExercise handles DELETE /api/exercises/:id
// @Summary Delete an exercise
// @Description Remove a library exercise (admin only)
// @Tags Exercises
// @Produce json
// @Param id path string true "Exercise id"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /exercises/{id} [delete]
func (h *ExerciseHandler) DeleteExercise(c *fiber.Ctx) error {
	if err := h.Store.DeleteExercise(c.Params("id")); err != nil {
		return serviceError(c, err, "deleteExercise")
	}

	return utils.MutationSuccessResponse(c, 1)
}
