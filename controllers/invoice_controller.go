package controllers

import (
	"net/http"

	"frontdesk-backend/middleware"
	"frontdesk-backend/models"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvoiceController struct {
	invoices *services.InvoiceService
}

func NewInvoiceController(invoices *services.InvoiceService) *InvoiceController {
	return &InvoiceController{invoices: invoices}
}

func parseInvoiceID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid invoice id")
		return uuid.Nil, false
	}
	return id, true
}

func (ic *InvoiceController) GetInvoices(c *gin.Context) {
	invoices, err := ic.invoices.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, invoices)
}

func (ic *InvoiceController) GetInvoice(c *gin.Context) {
	id, ok := parseInvoiceID(c)
	if !ok {
		return
	}

	inv, err := ic.invoices.GetByID(id)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, inv)
}

type invoiceItemInput struct {
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice" binding:"required"`
	TaxRate     float64 `json:"taxRate"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
}

type createInvoiceInput struct {
	BookingID      *uint              `json:"bookingId"`
	GuestID        *uint              `json:"guestId"`
	GuestName      string             `json:"guestName"`
	GuestEmail     string             `json:"guestEmail"`
	Currency       string             `json:"currency"`
	DiscountAmount float64            `json:"discountAmount"`
	DueDate        string             `json:"dueDate"`
	Notes          string             `json:"notes"`
	Items          []invoiceItemInput `json:"items" binding:"required,min=1"`
}

func (ic *InvoiceController) CreateInvoice(c *gin.Context) {
	var input createInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	inv := models.Invoice{
		BookingID:      input.BookingID,
		GuestID:        input.GuestID,
		GuestName:      input.GuestName,
		GuestEmail:     input.GuestEmail,
		Currency:       input.Currency,
		DiscountAmount: input.DiscountAmount,
		Notes:          input.Notes,
		ProcessedBy:    middleware.StaffName(c),
	}
	if input.DueDate != "" {
		due, err := utils.ParseDate(input.DueDate)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		inv.DueDate = &due
	}

	for _, item := range input.Items {
		invItem := models.InvoiceItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TaxRate:     item.TaxRate,
			Category:    item.Category,
		}
		if item.Date != "" {
			date, err := utils.ParseDate(item.Date)
			if err != nil {
				utils.JSONError(c, http.StatusBadRequest, err.Error())
				return
			}
			invItem.Date = date
		}
		inv.Items = append(inv.Items, invItem)
	}

	if err := ic.invoices.Create(&inv); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, inv)
}

// GenerateFromBooking derives a paid invoice + card payment from a booking's
// charges without going through checkout (used for re-billing).
func (ic *InvoiceController) GenerateFromBooking(c *gin.Context) {
	bookingID, ok := parseUintParam(c, "bookingId")
	if !ok {
		return
	}

	inv, err := ic.invoices.GenerateFromBooking(bookingID, middleware.StaffName(c))
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, inv)
}

func (ic *InvoiceController) SendInvoice(c *gin.Context) {
	id, ok := parseInvoiceID(c)
	if !ok {
		return
	}

	inv, err := ic.invoices.Send(id)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, inv)
}

type markPaidInput struct {
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Reference string  `json:"reference"`
}

func (ic *InvoiceController) MarkInvoicePaid(c *gin.Context) {
	id, ok := parseInvoiceID(c)
	if !ok {
		return
	}

	var input markPaidInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	payment := models.Payment{
		Amount:      input.Amount,
		Method:      input.Method,
		Reference:   input.Reference,
		ProcessedBy: middleware.StaffName(c),
	}
	if err := ic.invoices.MarkPaid(id, &payment); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"payment": payment})
}

func (ic *InvoiceController) SendReminder(c *gin.Context) {
	id, ok := parseInvoiceID(c)
	if !ok {
		return
	}

	inv, err := ic.invoices.SendReminder(id)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, inv)
}

func (ic *InvoiceController) GetOutstanding(c *gin.Context) {
	invoices, err := ic.invoices.GetOutstanding()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, invoices)
}

func (ic *InvoiceController) GetOverdue(c *gin.Context) {
	invoices, err := ic.invoices.GetOverdue()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, invoices)
}
