package controllers

import (
	"net/http"
	"time"

	"frontdesk-backend/middleware"
	"frontdesk-backend/models"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentController struct {
	payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{payments: payments}
}

func (pc *PaymentController) GetPayments(c *gin.Context) {
	payments, err := pc.payments.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payments)
}

type processPaymentInput struct {
	InvoiceID     *uuid.UUID `json:"invoiceId"`
	BookingID     *uint      `json:"bookingId"`
	Amount        float64    `json:"amount" binding:"required"`
	Currency      string     `json:"currency"`
	Method        string     `json:"method" binding:"required"`
	Reference     string     `json:"reference"`
	TransactionID string     `json:"transactionId"`
}

func (pc *PaymentController) ProcessPayment(c *gin.Context) {
	var input processPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "amount and method are required")
		return
	}

	payment := models.Payment{
		InvoiceID:     input.InvoiceID,
		BookingID:     input.BookingID,
		Amount:        input.Amount,
		Currency:      input.Currency,
		Method:        input.Method,
		Reference:     input.Reference,
		TransactionID: input.TransactionID,
		ProcessedBy:   middleware.StaffName(c),
	}
	if err := pc.payments.Process(&payment); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, payment)
}

type refundInput struct {
	Amount float64 `json:"amount"`
	Reason string  `json:"reason" binding:"required"`
}

func (pc *PaymentController) RefundPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payment id")
		return
	}

	var input refundInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "reason is required")
		return
	}

	payment, err := pc.payments.Refund(id, input.Amount, input.Reason)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payment)
}

func parseDateRange(c *gin.Context) (time.Time, time.Time, bool) {
	start, err := utils.ParseDate(c.Query("start"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid start date")
		return time.Time{}, time.Time{}, false
	}
	end, err := utils.ParseDate(c.Query("end"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid end date")
		return time.Time{}, time.Time{}, false
	}
	if end.Before(start) {
		utils.JSONError(c, http.StatusBadRequest, "end before start")
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func (pc *PaymentController) GetMethodStats(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	stats, err := pc.payments.MethodStats(start, end)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}
