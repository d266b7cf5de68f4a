package httpapi

import (
	"net/http"
	"time"

	paymentdto "github.com/dalligo/delivery-service/internal/usecase/dto/payment"
	paymentusecase "github.com/dalligo/delivery-service/internal/usecase/payment"
	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentUsecase paymentusecase.PaymentUsecase
}

func NewPaymentHandler(uc paymentusecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{paymentUsecase: uc}
}

type registerPaymentRequest struct {
	OrderID string `json:"order_id" binding:"required"`
	CardID  string `json:"card_id" binding:"required"`
	Amount  int64  `json:"amount" binding:"required"`
}

func (h *PaymentHandler) RegisterPayment(c *gin.Context) {
	var req registerPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := &paymentdto.RegisterPaymentInput{
		OrderID:  req.OrderID,
		CardID:   req.CardID,
		Amount:   req.Amount,
		Username: principal(c),
	}

	if err := h.paymentUsecase.RegisterPayment(input); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order_id": req.OrderID, "status": "PAYMENT_COMPLETE"})
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.paymentUsecase.GetPayment(c.Param("paymentId"), principal(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) GetPayments(c *gin.Context) {
	payments, err := h.paymentUsecase.GetPayments(principal(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

type searchPaymentsRequest struct {
	CreatedFrom *time.Time `json:"created_from"`
	CreatedTo   *time.Time `json:"created_to"`
	MinAmount   int64      `json:"min_amount"`
	MaxAmount   int64      `json:"max_amount"`
}

func (h *PaymentHandler) SearchPayments(c *gin.Context) {
	var req searchPaymentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := &paymentdto.SearchPaymentsInput{
		Username:  principal(c),
		MinAmount: req.MinAmount,
		MaxAmount: req.MaxAmount,
	}
	if req.CreatedFrom != nil {
		input.CreatedFrom = *req.CreatedFrom
	}
	if req.CreatedTo != nil {
		input.CreatedTo = *req.CreatedTo
	}

	payments, err := h.paymentUsecase.SearchPayments(input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

func (h *PaymentHandler) RemovePayment(c *gin.Context) {
	paymentID := c.Param("paymentId")
	if err := h.paymentUsecase.RemovePayment(paymentID, principal(c)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment_id": paymentID, "removed": true})
}
