package handler

import (
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/sangkips/marketplace-api/internal/application/service"
	"github.com/sangkips/marketplace-api/internal/presentation/http/dto/request"
	"github.com/sangkips/marketplace-api/internal/presentation/http/dto/response"
)

// TransactionHandler handles privileged transaction initiation requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// Initiate handles POST /api/initiate-privileged. On success the backend's
// status, status text and body are returned verbatim.
func (h *TransactionHandler) Initiate(c *gin.Context) {
	var req request.InitiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.transactionService.Initiate(c.Request.Context(), &service.InitiateInput{
		IsSpeculative: req.IsSpeculative,
		Booking:       req.BookingData,
		BodyParams:    req.BodyParams,
		QueryParams:   url.Values(req.QueryParams),
		AccessToken:   SessionToken(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(resp.Status, resp)
}
