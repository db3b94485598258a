// common.go
//
// A reusable software component catalog service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of jam-build-catalog.
// jam-build-catalog is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// jam-build-catalog is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with jam-build-catalog.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/jam-build-catalog/internal/catalog"
	"github.com/localnerve/jam-build-catalog/internal/logger"
	"github.com/localnerve/jam-build-catalog/internal/metrics"
	"github.com/localnerve/jam-build-catalog/internal/middleware"
	"github.com/localnerve/jam-build-catalog/internal/telemetry"
	"github.com/localnerve/jam-build-catalog/internal/types"
	"github.com/localnerve/jam-build-catalog/internal/utils"
)

// CatalogHandler handles the catalog routes
type CatalogHandler struct {
	Service *catalog.Service
	Stats   *telemetry.QueryStats
	Metrics *metrics.Metrics
	Log     *logger.Logger
}

// Register mounts the catalog routes on router. Every route requires a principal.
func (h *CatalogHandler) Register(router fiber.Router, validator middleware.SessionValidator) {
	cat := router.Group("/catalog", middleware.Authenticate(validator))

	cat.Get("/components", h.ListComponents)
	cat.Post("/components", h.CreateComponent)
	cat.Get("/components/:id", h.GetComponent)
	cat.Put("/components/:id", h.UpdateComponent)
	cat.Delete("/components/:id", h.DeleteComponent)
	cat.Post("/components/:id/use", h.UseComponent)

	cat.Get("/tree", h.GetTree)

	cat.Get("/categories", h.ListCategories)
	cat.Get("/categories/tree", h.GetCategoryTree)
	cat.Post("/categories", h.CreateCategory)
	cat.Put("/categories/:id", h.UpdateCategory)
	cat.Delete("/categories/:id", h.DeleteCategory)

	cat.Get("/stats/queries", h.GetQueryStats)
}

// fail converts a catalog error into the response error and counts policy refusals.
func (h *CatalogHandler) fail(err error) error {
	mapped := MapError(err)
	if mapped.Code == fiber.StatusForbidden && h.Metrics != nil {
		h.Metrics.AccessDenied.Inc()
	}
	if mapped.Code >= fiber.StatusInternalServerError && h.Log != nil {
		h.Log.Error("catalog request failed", "error", err)
	}
	return mapped
}

// MapError maps catalog errors to HTTP status codes and error types.
func MapError(err error) *types.CustomError {
	var (
		custom     *types.CustomError
		validation *catalog.ValidationError
		denied     *catalog.AccessDeniedError
		cycle      *catalog.CycleDetectedError
	)

	switch {
	case errors.As(err, &custom):
		return custom
	case errors.As(err, &validation):
		return &types.CustomError{Code: fiber.StatusBadRequest, Message: validation.Error(), Type: "catalog.validation", Cause: err}
	case errors.As(err, &denied):
		return &types.CustomError{Code: fiber.StatusForbidden, Message: denied.Error(), Type: "catalog.authorization", Cause: err}
	case errors.As(err, &cycle):
		return &types.CustomError{Code: fiber.StatusConflict, Message: cycle.Error(), Type: "catalog.cycle", Cause: err}
	case catalog.IsNotFound(err):
		return &types.CustomError{Code: fiber.StatusNotFound, Message: err.Error(), Type: "catalog.notFound", Cause: err}
	}
	return &types.CustomError{Code: fiber.StatusInternalServerError, Message: err.Error(), Type: "catalog.store", Cause: err}
}

// ErrorHandler renders every error in the standard envelope
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return utils.ErrorResponse(c, fe.Message, fe.Code, "unknown")
	}
	mapped := MapError(err)
	return utils.ErrorResponse(c, mapped.Message, mapped.Code, mapped.Type)
}

// badRequest reports an unreadable request body.
func badRequest(err error) error {
	return &types.CustomError{Code: fiber.StatusBadRequest, Message: "Invalid request body: " + err.Error(), Type: "catalog.request", Cause: err}
}
