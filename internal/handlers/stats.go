package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/jam-build-catalog/internal/telemetry"
	"github.com/localnerve/jam-build-catalog/internal/utils"
)

const defaultStatsLimit = 10

// GetQueryStats handles GET /api/catalog/stats/queries
// @Summary Search statistics
// @Description Most searched terms and recent queries that found nothing
// @Tags Stats
// @Produce json
// @Param limit query int false "Maximum entries per list" default(10)
// @Success 200 {object} telemetry.Snapshot
// @Failure 403 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /catalog/stats/queries [get]
func (h *CatalogHandler) GetQueryStats(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultStatsLimit)
	if limit <= 0 {
		limit = defaultStatsLimit
	}
	if h.Stats == nil {
		return utils.SuccessResponse(c, telemetry.Snapshot{}, fiber.StatusOK)
	}
	return utils.SuccessResponse(c, h.Stats.Snapshot(limit), fiber.StatusOK)
}
