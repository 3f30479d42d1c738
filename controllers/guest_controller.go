package controllers

import (
	"net/http"

	"frontdesk-backend/models"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type GuestController struct {
	guests *services.GuestService
}

func NewGuestController(guests *services.GuestService) *GuestController {
	return &GuestController{guests: guests}
}

func (gc *GuestController) GetGuests(c *gin.Context) {
	guests, err := gc.guests.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guests)
}

func (gc *GuestController) GetGuestByID(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	guest, err := gc.guests.GetByID(id)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

func (gc *GuestController) CreateGuest(c *gin.Context) {
	var guest models.Guest
	if err := c.ShouldBindJSON(&guest); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if guest.FullName == "" {
		utils.JSONError(c, http.StatusBadRequest, "full name is required")
		return
	}

	if err := gc.guests.Create(&guest); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, guest)
}

func (gc *GuestController) UpdateGuest(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var guest models.Guest
	if err := c.ShouldBindJSON(&guest); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	guest.ID = id

	if err := gc.guests.Update(&guest); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}

	updated, err := gc.guests.GetByID(id)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

type guestDocumentPayload struct {
	DocumentType string `json:"documentType" binding:"required"`
	FileName     string `json:"fileName" binding:"required"`
	FilePath     string `json:"filePath"`
}

// AddGuestDocument records an uploaded ID document. The file itself is
// served from /uploads; only metadata lands here.
func (gc *GuestController) AddGuestDocument(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var payload guestDocumentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "documentType and fileName are required")
		return
	}

	doc := models.GuestDocument{
		DocumentType: payload.DocumentType,
		FileName:     payload.FileName,
		FilePath:     payload.FilePath,
	}
	if err := gc.guests.AddDocument(id, &doc); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, doc)
}
