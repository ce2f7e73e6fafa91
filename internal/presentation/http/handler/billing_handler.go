package handler

import (
	"fmt"
	"time"

	"github.com/arunvel/kadai-api/internal/application/service"
	"github.com/arunvel/kadai-api/internal/domain/repository"
	"github.com/arunvel/kadai-api/internal/presentation/http/dto/response"
	"github.com/arunvel/kadai-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BillingHandler handles finalized bill HTTP requests
type BillingHandler struct {
	billingService *service.BillingService
	receiptService *service.ReceiptService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *service.BillingService, receiptService *service.ReceiptService) *BillingHandler {
	return &BillingHandler{billingService: billingService, receiptService: receiptService}
}

// billFilterFromQuery parses the shared history filters
func billFilterFromQuery(c *gin.Context) *repository.BillFilterParams {
	params := &repository.BillFilterParams{
		Pagination: pagination.DefaultPagination(),
		Search:     c.Query("search"),
	}
	if err := c.ShouldBindQuery(params.Pagination); err == nil {
		params.Pagination.Validate()
	}
	if from := c.Query("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			params.From = &t
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			end := t.Add(24*time.Hour - time.Nanosecond)
			params.To = &end
		}
	}
	return params
}

// Get returns a single bill with its items
// @Summary Get bill
// @Tags bills
// @Security BearerAuth
// @Param id path string true "Bill ID"
// @Success 200 {object} response.APIResponse
// @Router /bills/{id} [get]
func (h *BillingHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	billID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	bill, err := h.billingService.GetBill(c.Request.Context(), *userID, billID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved", bill)
}

// History returns paged bill history, newest first
// @Summary Bill history
// @Tags bills
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Bill number, customer name or mobile"
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Success 200 {object} response.APIResponse
// @Router /bills [get]
func (h *BillingHandler) History(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	params := billFilterFromQuery(c)
	bills, total, err := h.billingService.History(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	paging := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	response.SuccessWithPagination(c, 200, "Bills retrieved", pagination.NewPaginatedResult(bills, paging))
}

// HistoryCursor returns cursor-paged bill history for infinite scroll
// @Summary Bill history (cursor)
// @Tags bills
// @Security BearerAuth
// @Param cursor query string false "Opaque cursor"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.APIResponse
// @Router /bills/cursor [get]
func (h *BillingHandler) HistoryCursor(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	cursorParams := &pagination.CursorParams{}
	if err := c.ShouldBindQuery(cursorParams); err != nil {
		response.BadRequest(c, "Invalid cursor parameters")
		return
	}
	cursorParams.Validate()

	params := &repository.BillCursorFilterParams{
		Cursor: cursorParams,
		Search: c.Query("search"),
	}

	bills, cursorInfo, err := h.billingService.HistoryWithCursor(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bills retrieved", pagination.NewCursorPaginatedResult(bills, cursorInfo))
}

// Export downloads the bill history as an Excel workbook
// @Summary Export bills
// @Tags bills
// @Security BearerAuth
// @Param search query string false "Bill number, customer name or mobile"
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Success 200 {file} binary
// @Router /bills/export [get]
func (h *BillingHandler) Export(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	params := billFilterFromQuery(c)
	// Exports are not paged; pull everything matching the filter.
	params.Pagination.Page = 1
	params.Pagination.PerPage = 10000

	data, err := h.billingService.ExportHistoryXLSX(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("bills-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// Receipt returns the raw ESC/POS byte stream for a bill
// @Summary Bill receipt
// @Description Render the bill as ESC/POS bytes for a thermal printer
// @Tags bills
// @Security BearerAuth
// @Param id path string true "Bill ID"
// @Success 200 {file} binary
// @Router /bills/{id}/receipt [get]
func (h *BillingHandler) Receipt(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	billID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	bill, err := h.billingService.GetBill(c.Request.Context(), *userID, billID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(200, "application/octet-stream", h.receiptService.Render(bill))
}

// Print sends the bill to the configured thermal printer
// @Summary Print receipt
// @Tags bills
// @Security BearerAuth
// @Param id path string true "Bill ID"
// @Success 200 {object} response.APIResponse
// @Router /bills/{id}/print [post]
func (h *BillingHandler) Print(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	billID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	bill, err := h.billingService.GetBill(c.Request.Context(), *userID, billID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.receiptService.Print(bill); err != nil {
		response.ErrorWithCode(c, 502, "Printer error: "+err.Error())
		return
	}

	response.OK(c, "Receipt printed", gin.H{"bill_number": bill.BillNumber})
}

// PrinterStatus reports whether receipt hardware is reachable
// @Summary Printer status
// @Tags bills
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /printer/status [get]
func (h *BillingHandler) PrinterStatus(c *gin.Context) {
	response.OK(c, "Printer status", gin.H{
		"connected": h.receiptService.IsPrinterConnected(),
	})
}
