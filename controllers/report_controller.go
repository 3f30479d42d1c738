package controllers

import (
	"net/http"
	"strconv"

	"frontdesk-backend/middleware"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{reports: reports}
}

func (rc *ReportController) GetRevenue(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	revenue, err := rc.reports.RevenueByPeriod(start, end)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"revenue": revenue})
}

func (rc *ReportController) GetRevenueBreakdown(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	breakdown, err := rc.reports.GetRevenueBreakdown(start, end)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, breakdown)
}

func (rc *ReportController) GetMonthlyTrend(c *gin.Context) {
	months := 6
	if raw := c.Query("months"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 || v > 36 {
			utils.JSONError(c, http.StatusBadRequest, "invalid months")
			return
		}
		months = v
	}

	trend, err := rc.reports.GetMonthlyRevenueTrend(months)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, trend)
}

type generateReportInput struct {
	Type  string `json:"type" binding:"required"`
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

func (rc *ReportController) GenerateReport(c *gin.Context) {
	var input generateReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "type, start and end are required")
		return
	}

	start, err := utils.ParseDate(input.Start)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	end, err := utils.ParseDate(input.End)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	report, err := rc.reports.GenerateReport(input.Type, start, end, middleware.StaffName(c))
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, report)
}

func (rc *ReportController) GetReports(c *gin.Context) {
	reports, err := rc.reports.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reports)
}
