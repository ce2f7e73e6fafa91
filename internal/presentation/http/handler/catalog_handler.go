package handler

import (
	"github.com/arunvel/kadai-api/internal/application/service"
	"github.com/arunvel/kadai-api/internal/presentation/http/dto/request"
	"github.com/arunvel/kadai-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler handles vegetable catalog HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Search returns vegetables matching the search term, priority-ranked
// @Summary Search vegetables
// @Description Search the catalog by English, Tamil or Tanglish name
// @Tags catalog
// @Security BearerAuth
// @Param q query string false "Search term"
// @Success 200 {object} response.APIResponse
// @Router /vegetables/search [get]
func (h *CatalogHandler) Search(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	items, err := h.catalogService.Search(c.Request.Context(), *userID, c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vegetables retrieved", items)
}

// List returns the full ranked catalog
// @Summary List vegetables
// @Tags catalog
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /vegetables [get]
func (h *CatalogHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	items, err := h.catalogService.List(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vegetables retrieved", items)
}

// Get returns a single vegetable
// @Summary Get vegetable
// @Tags catalog
// @Security BearerAuth
// @Param id path string true "Vegetable ID"
// @Success 200 {object} response.APIResponse
// @Router /vegetables/{id} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vegetable ID")
		return
	}

	vegetable, err := h.catalogService.GetByID(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vegetable retrieved", vegetable)
}

// Create adds a vegetable to the catalog
// @Summary Create vegetable
// @Tags catalog
// @Security BearerAuth
// @Param request body request.CreateVegetableRequest true "Vegetable data"
// @Success 201 {object} response.APIResponse
// @Router /vegetables [post]
func (h *CatalogHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateVegetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	vegetable, err := h.catalogService.Create(c.Request.Context(), *userID, &service.CreateVegetableInput{
		Name:           req.Name,
		TamilName:      req.TamilName,
		TanglishName:   req.TanglishName,
		Category:       req.Category,
		RetailPrice:    req.RetailPrice,
		WholesalePrice: req.WholesalePrice,
		StockKg:        req.StockKg,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Vegetable created", vegetable)
}

// Update changes price or stock on a catalog item
// @Summary Update vegetable
// @Tags catalog
// @Security BearerAuth
// @Param id path string true "Vegetable ID"
// @Param request body request.UpdateVegetableRequest true "Fields to update"
// @Success 200 {object} response.APIResponse
// @Router /vegetables/{id} [put]
func (h *CatalogHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vegetable ID")
		return
	}

	var req request.UpdateVegetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	vegetable, err := h.catalogService.Update(c.Request.Context(), *userID, id, &service.UpdateVegetableInput{
		RetailPrice:    req.RetailPrice,
		WholesalePrice: req.WholesalePrice,
		StockKg:        req.StockKg,
		TamilName:      req.TamilName,
		Category:       req.Category,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vegetable updated", vegetable)
}

// Delete removes a vegetable from the catalog
// @Summary Delete vegetable
// @Tags catalog
// @Security BearerAuth
// @Param id path string true "Vegetable ID"
// @Success 204 {object} response.APIResponse
// @Router /vegetables/{id} [delete]
func (h *CatalogHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vegetable ID")
		return
	}

	if err := h.catalogService.Delete(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// BulkSync upserts catalog rows by name in one transaction
// @Summary Bulk sync catalog
// @Description Upload price and stock for many vegetables at once
// @Tags catalog
// @Security BearerAuth
// @Param request body request.BulkSyncRequest true "Catalog rows"
// @Success 200 {object} response.APIResponse
// @Router /vegetables/bulk-sync [post]
func (h *CatalogHandler) BulkSync(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.BulkSyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	inputs := make([]service.BulkSyncInput, 0, len(req.Items))
	for _, row := range req.Items {
		inputs = append(inputs, service.BulkSyncInput{
			Name:           row.Name,
			TamilName:      row.TamilName,
			TanglishName:   row.TanglishName,
			RetailPrice:    row.RetailPrice,
			WholesalePrice: row.WholesalePrice,
			StockKg:        row.StockKg,
		})
	}

	result, err := h.catalogService.BulkSync(c.Request.Context(), *userID, inputs)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Catalog synced", result)
}
