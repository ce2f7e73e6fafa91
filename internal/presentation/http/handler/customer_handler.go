package handler

import (
	"strconv"

	"github.com/arunvel/kadai-api/internal/application/service"
	"github.com/arunvel/kadai-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// CustomerHandler handles customer book HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Lookup finds a customer by mobile number
// @Summary Lookup customer
// @Description Resolve a mobile number against the customer book
// @Tags customers
// @Security BearerAuth
// @Param mobile path string true "Mobile number"
// @Success 200 {object} response.APIResponse
// @Router /customers/{mobile} [get]
func (h *CustomerHandler) Lookup(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	customer, err := h.customerService.Lookup(c.Request.Context(), *userID, c.Param("mobile"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if customer == nil {
		response.OK(c, "Customer not found", gin.H{"found": false})
		return
	}

	response.OK(c, "Customer found", gin.H{
		"found":    true,
		"customer": customer,
	})
}

// Stats aggregates a customer's purchase history
// @Summary Customer stats
// @Tags customers
// @Security BearerAuth
// @Param mobile path string true "Mobile number"
// @Success 200 {object} response.APIResponse
// @Router /customers/{mobile}/stats [get]
func (h *CustomerHandler) Stats(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	stats, err := h.customerService.Stats(c.Request.Context(), *userID, c.Param("mobile"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer stats retrieved", stats)
}

// Bills returns a customer's recent bills
// @Summary Customer bills
// @Tags customers
// @Security BearerAuth
// @Param mobile path string true "Mobile number"
// @Param limit query int false "Max bills to return"
// @Success 200 {object} response.APIResponse
// @Router /customers/{mobile}/bills [get]
func (h *CustomerHandler) Bills(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	bills, err := h.customerService.Bills(c.Request.Context(), *userID, c.Param("mobile"), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer bills retrieved", bills)
}

// List returns the shop's customers
// @Summary List customers
// @Tags customers
// @Security BearerAuth
// @Param search query string false "Name or mobile filter"
// @Param limit query int false "Max customers to return"
// @Success 200 {object} response.APIResponse
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	customers, err := h.customerService.List(c.Request.Context(), *userID, c.Query("search"), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customers retrieved", customers)
}
