package controllers

import (
	"net/http"
	"strconv"

	"frontdesk-backend/middleware"
	"frontdesk-backend/models"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	bookings *services.BookingService
	guests   *services.GuestService
	checkout *services.CheckoutService
}

func NewBookingController(
	bookings *services.BookingService,
	guests *services.GuestService,
	checkout *services.CheckoutService,
) *BookingController {
	return &BookingController{bookings: bookings, guests: guests, checkout: checkout}
}

func (bc *BookingController) GetBookings(c *gin.Context) {
	list, err := bc.bookings.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (bc *BookingController) GetBookingDetails(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	booking, err := bc.bookings.GetByID(id)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

type createBookingInput struct {
	RoomID   uint   `json:"roomId" binding:"required"`
	GuestID  uint   `json:"guestId"`
	CheckIn  string `json:"checkIn" binding:"required"`
	CheckOut string `json:"checkOut" binding:"required"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`
	Notes    string `json:"notes"`

	// Inline guest profile, used when no guestId is given (walk-in).
	Guest *models.Guest `json:"guest"`
}

func (bc *BookingController) CreateBooking(c *gin.Context) {
	var input createBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	checkIn, err := utils.ParseDate(input.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	checkOut, err := utils.ParseDate(input.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	guestID := input.GuestID
	if guestID == 0 {
		if input.Guest == nil || input.Guest.FullName == "" {
			utils.JSONError(c, http.StatusBadRequest, "guestId or guest profile is required")
			return
		}
		if err := bc.guests.Create(input.Guest); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, err.Error())
			return
		}
		guestID = input.Guest.ID
	}

	booking := models.Booking{
		RoomID:   input.RoomID,
		GuestID:  guestID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Adults:   input.Adults,
		Children: input.Children,
		Notes:    input.Notes,
	}

	if err := bc.bookings.Create(&booking); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// CheckAvailability answers the pre-submit availability probe the booking
// form runs. Creation re-validates regardless, this is advisory.
func (bc *BookingController) CheckAvailability(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	checkIn, err := utils.ParseDate(c.Query("check_in"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	checkOut, err := utils.ParseDate(c.Query("check_out"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	var exclude uint
	if raw := c.Query("exclude_booking"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid exclude_booking")
			return
		}
		exclude = uint(v)
	}

	booked, err := bc.bookings.IsRoomBooked(id, checkIn, checkOut, exclude)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"available": !booked})
}

type bookingStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var payload bookingStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}

	if err := bc.bookings.UpdateStatus(id, payload.Status); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONMessage(c, http.StatusOK, "booking status updated")
}

type chargePayload struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Currency    string  `json:"currency"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
}

func (bc *BookingController) AddCharge(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var payload chargePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "description and amount are required")
		return
	}

	charge := models.RoomCharge{
		Description: payload.Description,
		Amount:      payload.Amount,
		Currency:    payload.Currency,
		Category:    payload.Category,
	}
	if payload.Date != "" {
		date, err := utils.ParseDate(payload.Date)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		charge.Date = date
	}

	if err := bc.bookings.AddCharge(id, &charge); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, charge)
}

// CheckoutBooking completes the stay: the booking flips to checked-out and
// its invoice+payment pair comes back in the response for the bill views.
func (bc *BookingController) CheckoutBooking(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	invoice, err := bc.checkout.Complete(id, middleware.StaffName(c))
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"invoice": invoice})
}
