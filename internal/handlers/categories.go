package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/jam-build-catalog/internal/middleware"
	"github.com/localnerve/jam-build-catalog/internal/types"
	"github.com/localnerve/jam-build-catalog/internal/utils"
)

// CategoryTreeResponse is the category hierarchy with the categories left out of it.
type CategoryTreeResponse struct {
	Roots    []types.CategoryNodeView `json:"roots"`
	Excluded []string                 `json:"excluded"`
}

// ListCategories handles GET /api/catalog/categories
// @Summary List categories
// @Description All categories ordered by name, with parent names resolved
// @Tags Categories
// @Produce json
// @Success 200 {array} types.CategoryView
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /catalog/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.Service.ListCategories(c.UserContext(), middleware.Principal(c))
	if err != nil {
		return h.fail(err)
	}

	views := make([]types.CategoryView, 0, len(categories))
	for _, cat := range categories {
		views = append(views, types.NewCategoryView(cat.Category, cat.ParentName))
	}
	return utils.SuccessResponse(c, views, fiber.StatusOK)
}

// GetCategoryTree handles GET /api/catalog/categories/tree
// @Summary Category hierarchy
// @Description The stored category taxonomy. Categories on a parent cycle are listed as excluded.
// @Tags Categories
// @Produce json
// @Success 200 {object} CategoryTreeResponse
// @Failure 403 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /catalog/categories/tree [get]
func (h *CatalogHandler) GetCategoryTree(c *fiber.Ctx) error {
	hierarchy, err := h.Service.CategoryHierarchy(c.UserContext(), middleware.Principal(c))
	if err != nil {
		return h.fail(err)
	}

	res := CategoryTreeResponse{
		Roots:    types.NewCategoryNodeViews(hierarchy.Roots),
		Excluded: make([]string, 0, len(hierarchy.Excluded)),
	}
	for _, e := range hierarchy.Excluded {
		res.Excluded = append(res.Excluded, e.Error())
	}
	return utils.SuccessResponse(c, res, fiber.StatusOK)
}

// CreateCategory handles POST /api/catalog/categories
// @Summary Create a category
// @Tags Categories
// @Accept json
// @Produce json
// @Param category body types.CategoryInput true "Category"
// @Success 201 {object} types.CategoryView
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /catalog/categories [post]
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var input types.CategoryInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(err)
	}

	created, err := h.Service.CreateCategory(c.UserContext(), middleware.Principal(c), input.Category())
	if err != nil {
		return h.fail(err)
	}
	return utils.SuccessResponse(c, types.NewCategoryView(created, ""), fiber.StatusCreated)
}

// UpdateCategory handles PUT /api/catalog/categories/:id
// @Summary Update a category
// @Description Only the creator or an admin may update. A parent that would form a cycle is refused.
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body types.CategoryInput true "Category"
// @Success 200 {object} types.CategoryView
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /catalog/categories/{id} [put]
func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	var input types.CategoryInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(err)
	}

	category := input.Category()
	category.ID = c.Params("id")

	updated, err := h.Service.UpdateCategory(c.UserContext(), middleware.Principal(c), category)
	if err != nil {
		return h.fail(err)
	}
	return utils.SuccessResponse(c, types.NewCategoryView(updated, ""), fiber.StatusOK)
}

// DeleteCategory handles DELETE /api/catalog/categories/:id
// @Summary Delete a category
// @Description Children keep their parent reference and surface as roots.
// @Tags Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /catalog/categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Service.DeleteCategory(c.UserContext(), middleware.Principal(c), id); err != nil {
		return h.fail(err)
	}
	return utils.MutationSuccessResponse(c, id)
}
