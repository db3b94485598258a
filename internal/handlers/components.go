package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"
	"github.com/localnerve/jam-build-catalog/internal/catalog"
	"github.com/localnerve/jam-build-catalog/internal/middleware"
	"github.com/localnerve/jam-build-catalog/internal/types"
	"github.com/localnerve/jam-build-catalog/internal/utils"
)

// UseInput is the request body of a component use.
type UseInput struct {
	Query string `json:"query" example:"json"`
}

// ListComponents handles GET /api/catalog/components
// @Summary Search components
// @Description List components matching a free-text query and optional category scope, most used first
// @Tags Components
// @Produce json
// @Param q query string false "Free-text query"
// @Param category query string false "Category or parent category scope"
// @Success 200 {array} types.ComponentView
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /catalog/components [get]
func (h *CatalogHandler) ListComponents(c *fiber.Ctx) error {
	// request strings alias the fasthttp buffer; copy before they are retained
	query := fiberutils.CopyString(c.Query("q"))
	scope := strings.TrimSpace(c.Query("category"))

	found, err := h.Service.Search(c.UserContext(), middleware.Principal(c), query, scope)
	if err != nil {
		return h.fail(err)
	}

	if catalog.HasQuery(query) {
		if h.Metrics != nil {
			h.Metrics.Searches.Inc()
		}
		if h.Stats != nil {
			h.Stats.Record(query, len(found))
		}
	}

	return utils.SuccessResponse(c, types.NewComponentViews(found), fiber.StatusOK)
}

// GetComponent handles GET /api/catalog/components/:id
// @Summary Get a component
// @Tags Components
// @Produce json
// @Param id path string true "Component ID"
// @Success 200 {object} types.ComponentView
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /catalog/components/{id} [get]
func (h *CatalogHandler) GetComponent(c *fiber.Ctx) error {
	component, err := h.Service.GetComponent(c.UserContext(), middleware.Principal(c), c.Params("id"))
	if err != nil {
		return h.fail(err)
	}
	return utils.SuccessResponse(c, types.NewComponentView(component), fiber.StatusOK)
}

// CreateComponent handles POST /api/catalog/components
// @Summary Create a component
// @Description Create a component owned by the caller
// @Tags Components
// @Accept json
// @Produce json
// @Param component body types.ComponentInput true "Component"
// @Success 201 {object} types.ComponentView
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /catalog/components [post]
func (h *CatalogHandler) CreateComponent(c *fiber.Ctx) error {
	var input types.ComponentInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(err)
	}

	created, err := h.Service.CreateComponent(c.UserContext(), middleware.Principal(c), input.Component())
	if err != nil {
		return h.fail(err)
	}
	return utils.SuccessResponse(c, types.NewComponentView(created), fiber.StatusCreated)
}

// UpdateComponent handles PUT /api/catalog/components/:id
// @Summary Update a component
// @Description Replace the editable fields of a component. Only the creator or an admin may update.
// @Tags Components
// @Accept json
// @Produce json
// @Param id path string true "Component ID"
// @Param component body types.ComponentInput true "Component"
// @Success 200 {object} types.ComponentView
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /catalog/components/{id} [put]
func (h *CatalogHandler) UpdateComponent(c *fiber.Ctx) error {
	var input types.ComponentInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(err)
	}

	component := input.Component()
	component.ID = c.Params("id")

	updated, err := h.Service.UpdateComponent(c.UserContext(), middleware.Principal(c), component)
	if err != nil {
		return h.fail(err)
	}
	return utils.SuccessResponse(c, types.NewComponentView(updated), fiber.StatusOK)
}

// DeleteComponent handles DELETE /api/catalog/components/:id
// @Summary Delete a component
// @Description Hard-delete a component. Only the creator or an admin may delete.
// @Tags Components
// @Produce json
// @Param id path string true "Component ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /catalog/components/{id} [delete]
func (h *CatalogHandler) DeleteComponent(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Service.DeleteComponent(c.UserContext(), middleware.Principal(c), id); err != nil {
		return h.fail(err)
	}
	return utils.MutationSuccessResponse(c, id)
}

// UseComponent handles POST /api/catalog/components/:id/use
// @Summary Record a component use
// @Description Count one use. A non-empty query marks the use as found through search.
// @Tags Components
// @Accept json
// @Produce json
// @Param id path string true "Component ID"
// @Param use body UseInput false "Active search query"
// @Success 200 {object} catalog.Counters
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /catalog/components/{id}/use [post]
func (h *CatalogHandler) UseComponent(c *fiber.Ctx) error {
	var input UseInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return badRequest(err)
		}
	}

	counters, err := h.Service.UseComponent(c.UserContext(), middleware.Principal(c), c.Params("id"), input.Query)
	if err != nil {
		return h.fail(err)
	}
	if h.Metrics != nil {
		h.Metrics.ObserveUse(catalog.HasQuery(input.Query))
	}
	return utils.SuccessResponse(c, counters, fiber.StatusOK)
}

// GetTree handles GET /api/catalog/tree
// @Summary Component tree
// @Description Components grouped by their parent category and category fields
// @Tags Components
// @Produce json
// @Success 200 {array} types.TreeNodeView
// @Failure 403 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /catalog/tree [get]
func (h *CatalogHandler) GetTree(c *fiber.Ctx) error {
	tree, err := h.Service.ComponentTree(c.UserContext(), middleware.Principal(c))
	if err != nil {
		return h.fail(err)
	}
	return utils.SuccessResponse(c, types.NewTreeViews(tree), fiber.StatusOK)
}
