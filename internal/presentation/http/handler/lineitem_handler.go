package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sangkips/marketplace-api/internal/application/service"
	"github.com/sangkips/marketplace-api/internal/presentation/http/dto/request"
	"github.com/sangkips/marketplace-api/internal/presentation/http/dto/response"
)

// LineItemHandler handles booking price preview requests
type LineItemHandler struct {
	lineItemService *service.LineItemService
}

// NewLineItemHandler creates a new line item handler
func NewLineItemHandler(lineItemService *service.LineItemService) *LineItemHandler {
	return &LineItemHandler{lineItemService: lineItemService}
}

// Preview handles POST /api/transaction-line-items. The response body is the
// raw line item list in the storefront wire format, not the error envelope.
func (h *LineItemHandler) Preview(c *gin.Context) {
	var req request.LineItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	items, err := h.lineItemService.Preview(c.Request.Context(), &service.PreviewInput{
		ListingID:    req.ListingID,
		IsOwnListing: req.IsOwnListing,
		Booking:      req.BookingData,
		AccessToken:  SessionToken(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}
