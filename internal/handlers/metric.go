package handlers

import (
	"github.com/fitstack/fittrack/internal/services"
	"github.com/fitstack/fittrack/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// MetricHandler handles progress metric routes
type MetricHandler struct {
	Store *services.Store
}

// ListMetrics handles GET /api/metrics
// @Summary List own metrics
// @Description List the authenticated user's progress metrics, most recent first
// @Tags Metrics
// @Produce json
// @Param type query string false "Metric type filter"
// @Param limit query int false "Maximum number of results"
// @Success 200 {array} models.ProgressMetric
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /metrics [get]
func (h *MetricHandler) ListMetrics(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "data.authorization.user")
	}

	metrics, err := h.Store.ListMetrics(userID, c.Query("type"), c.QueryInt("limit"))
	if err != nil {
		return serviceError(c, err, "listMetrics")
	}

	return c.Status(fiber.StatusOK).JSON(metrics)
}

// CreateMetric handles POST /api/metrics
// @Summary Record a metric
// @Description Record a progress measurement for the authenticated user
// @Tags Metrics
// @Accept json
// @Produce json
// @Param body body services.MetricInput true "Metric fields"
// @Success 201 {object} models.ProgressMetric
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /metrics [post]
func (h *MetricHandler) CreateMetric(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "data.authorization.user")
	}

	var input services.MetricInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "data.validation.input")
	}
	if input.MetricType == "" {
		return utils.ErrorResponse(c, "metricType is required", fiber.StatusBadRequest, "data.validation.input")
	}

	metric, err := h.Store.CreateMetric(userID, input)
	if err != nil {
		return serviceError(c, err, "createMetric")
	}

	return c.Status(fiber.StatusCreated).JSON(metric)
}

// DeleteMetric handles DELETE /api/metrics/:id
// @Summary Delete a metric
// @Description Delete one of the authenticated user's metric entries
// @Tags Metrics
// @Produce json
// @Param id path string true "Metric id"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /metrics/{id} [delete]
func (h *MetricHandler) DeleteMetric(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "data.authorization.user")
	}

	if err := h.Store.DeleteMetric(userID, c.Params("id")); err != nil {
		return serviceError(c, err, "deleteMetric")
	}

	return utils.MutationSuccessResponse(c, 1)
}
