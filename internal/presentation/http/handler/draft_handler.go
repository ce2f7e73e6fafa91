package handler

import (
	"github.com/arunvel/kadai-api/internal/application/service"
	"github.com/arunvel/kadai-api/internal/domain/enum"
	"github.com/arunvel/kadai-api/internal/domain/invoice"
	"github.com/arunvel/kadai-api/internal/presentation/http/dto/request"
	"github.com/arunvel/kadai-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DraftHandler handles the open draft invoice. Every mutation returns the full
// draft snapshot so the till UI can re-render from one payload.
type DraftHandler struct {
	draftService     *service.DraftService
	dashboardService *service.DashboardService
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(draftService *service.DraftService, dashboardService *service.DashboardService) *DraftHandler {
	return &DraftHandler{draftService: draftService, dashboardService: dashboardService}
}

// Get returns the current draft
// @Summary Get draft
// @Tags draft
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /draft [get]
func (h *DraftHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	response.OK(c, "Draft retrieved", h.draftService.Get(*userID))
}

// SetSearchTerm records the item search box contents
// @Summary Set search term
// @Tags draft
// @Security BearerAuth
// @Param request body request.SetSearchTermRequest true "Search term"
// @Success 200 {object} response.APIResponse
// @Router /draft/search-term [put]
func (h *DraftHandler) SetSearchTerm(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.SetSearchTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	response.OK(c, "Search term updated", h.draftService.SetSearchTerm(*userID, req.Term))
}

// AddItem puts a vegetable on the draft
// @Summary Add item
// @Description Add a vegetable at the current mode price, or bump its quantity
// @Tags draft
// @Security BearerAuth
// @Param request body request.AddItemRequest true "Vegetable to add"
// @Success 200 {object} response.APIResponse
// @Router /draft/items [post]
func (h *DraftHandler) AddItem(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	vegetableID, err := uuid.Parse(req.VegetableID)
	if err != nil {
		response.BadRequest(c, "Invalid vegetable ID")
		return
	}

	view, err := h.draftService.AddItem(c.Request.Context(), *userID, vegetableID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added", view)
}

// RemoveItem takes a line off the draft
// @Summary Remove item
// @Tags draft
// @Security BearerAuth
// @Param id path string true "Vegetable ID"
// @Success 200 {object} response.APIResponse
// @Router /draft/items/{id} [delete]
func (h *DraftHandler) RemoveItem(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	vegetableID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vegetable ID")
		return
	}

	response.OK(c, "Item removed", h.draftService.RemoveItem(*userID, vegetableID))
}

// EditLine edits one field of a draft line; the other two are derived
// @Summary Edit line
// @Description Edit quantity, price or total; the remaining fields recompute
// @Tags draft
// @Security BearerAuth
// @Param id path string true "Vegetable ID"
// @Param request body request.EditLineRequest true "Field and value"
// @Success 200 {object} response.APIResponse
// @Router /draft/items/{id} [patch]
func (h *DraftHandler) EditLine(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	vegetableID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vegetable ID")
		return
	}

	var req request.EditLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var kind invoice.EditKind
	switch req.Field {
	case "quantity":
		kind = invoice.EditQuantity
	case "price":
		kind = invoice.EditPrice
	case "total":
		kind = invoice.EditTotal
	default:
		response.BadRequest(c, "Field must be quantity, price or total")
		return
	}

	view, err := h.draftService.EditLine(*userID, vegetableID, invoice.Edit{Kind: kind, Value: req.Value})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Line updated", view)
}

// StepQuantity nudges a line's weight by delta kg
// @Summary Step quantity
// @Tags draft
// @Security BearerAuth
// @Param id path string true "Vegetable ID"
// @Param request body request.StepQuantityRequest true "Delta in kg"
// @Success 200 {object} response.APIResponse
// @Router /draft/items/{id}/step [post]
func (h *DraftHandler) StepQuantity(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	vegetableID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vegetable ID")
		return
	}

	var req request.StepQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.draftService.StepQuantity(*userID, vegetableID, req.DeltaKg)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quantity updated", view)
}

// SetDiscount sets the flat rupee discount
// @Summary Set discount
// @Tags draft
// @Security BearerAuth
// @Param request body request.SetDiscountRequest true "Discount in rupees"
// @Success 200 {object} response.APIResponse
// @Router /draft/discount [put]
func (h *DraftHandler) SetDiscount(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.SetDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	response.OK(c, "Discount updated", h.draftService.SetDiscount(*userID, req.Discount))
}

// SetBillingMode switches Retail/Wholesale pricing
// @Summary Set billing mode
// @Tags draft
// @Security BearerAuth
// @Param request body request.SetBillingModeRequest true "Billing mode"
// @Success 200 {object} response.APIResponse
// @Router /draft/mode [put]
func (h *DraftHandler) SetBillingMode(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.SetBillingModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.draftService.SetBillingMode(*userID, enum.BillingMode(req.Mode))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Billing mode updated", view)
}

// SetCustomer updates the draft's customer fields. When the mobile reaches
// ten digits the customer book lookup runs before responding, so the reply
// already carries found/not_found and any auto-filled name.
// @Summary Set customer
// @Tags draft
// @Security BearerAuth
// @Param request body request.SetCustomerRequest true "Customer fields"
// @Success 200 {object} response.APIResponse
// @Router /draft/customer [put]
func (h *DraftHandler) SetCustomer(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.SetCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var view *service.DraftView
	if req.Name != nil {
		view = h.draftService.SetCustomerName(*userID, *req.Name)
	}
	if req.Mobile != nil {
		v, token, lookup := h.draftService.SetCustomerMobile(*userID, *req.Mobile)
		view = v
		if lookup {
			v, err := h.draftService.LookupCustomer(c.Request.Context(), *userID, v.CustomerMobile, token)
			if err != nil {
				response.Error(c, err)
				return
			}
			view = v
		}
	}
	if view == nil {
		view = h.draftService.Get(*userID)
	}

	response.OK(c, "Customer updated", view)
}

// Clear abandons the draft and starts a fresh invoice
// @Summary Clear draft
// @Tags draft
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /draft [delete]
func (h *DraftHandler) Clear(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	response.OK(c, "Draft cleared", h.draftService.Clear(*userID))
}

// Submit finalizes the draft into a bill
// @Summary Submit draft
// @Description Persist the draft as a bill; on failure the draft is kept intact
// @Tags draft
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /draft/submit [post]
func (h *DraftHandler) Submit(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	bill, view, err := h.draftService.Submit(c.Request.Context(), *userID, &service.SubmitInput{
		ShopName: GetShopName(c),
	})
	if err != nil {
		response.ErrorWithData(c, err, gin.H{"draft": view})
		return
	}

	h.dashboardService.Invalidate(c.Request.Context(), *userID)

	response.Created(c, "Bill created", gin.H{
		"bill":  bill,
		"draft": view,
	})
}
