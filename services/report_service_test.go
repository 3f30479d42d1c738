package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk-backend/models"
)

func seedPaidInvoice(t *testing.T, svc *InvoiceService, items []models.InvoiceItem) *models.Invoice {
	t.Helper()

	inv := &models.Invoice{
		GuestName: "Maria Santos",
		Status:    models.InvoiceStatusPaid,
		Items:     items,
	}
	require.NoError(t, svc.Create(inv))
	return inv
}

func TestRevenueBreakdownSumsToTotal(t *testing.T) {
	db := newTestDB(t)
	invoices := NewInvoiceService(db, 0.10)
	reports := NewReportService(db, NewPaymentService(db), OperationalDefaults{})

	seedPaidInvoice(t, invoices, []models.InvoiceItem{
		{Description: "Room 101 x3 nights", UnitPrice: 450, Category: models.CategoryAccommodation},
		{Description: "Dinner", UnitPrice: 60, Category: models.CategoryRestaurant},
	})
	seedPaidInvoice(t, invoices, []models.InvoiceItem{
		{Description: "Banquet hall", UnitPrice: 300, Category: models.CategoryBanquet},
		{Description: "Gift shop", UnitPrice: 25, Category: "retail"},
	})

	// drafts never count towards revenue
	draft := &models.Invoice{
		GuestName: "Ken Osei",
		Items:     []models.InvoiceItem{{Description: "Laundry", UnitPrice: 999}},
	}
	require.NoError(t, invoices.Create(draft))

	today := time.Now().UTC()
	total, err := reports.RevenueByPeriod(today, today)
	require.NoError(t, err)
	assert.Equal(t, 835.0, total)

	bd, err := reports.GetRevenueBreakdown(today, today)
	require.NoError(t, err)
	assert.Equal(t, 450.0, bd.Rooms)
	assert.Equal(t, 60.0, bd.Restaurant)
	assert.Equal(t, 300.0, bd.Banquet)
	assert.Equal(t, 25.0, bd.Other)
	assert.Equal(t, total, bd.Rooms+bd.Restaurant+bd.Banquet+bd.Other)
}

func TestRevenueOutsidePeriodIsZero(t *testing.T) {
	db := newTestDB(t)
	invoices := NewInvoiceService(db, 0.10)
	reports := NewReportService(db, NewPaymentService(db), OperationalDefaults{})

	seedPaidInvoice(t, invoices, []models.InvoiceItem{
		{Description: "Room", UnitPrice: 450, Category: models.CategoryAccommodation},
	})

	total, err := reports.RevenueByPeriod(date(2020, time.January, 1), date(2020, time.January, 31))
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestGenerateReportSnapshotsAggregates(t *testing.T) {
	db := newTestDB(t)
	invoices := NewInvoiceService(db, 0.10)
	payments := NewPaymentService(db)
	defaults := OperationalDefaults{OccupancyRate: 0.72, AverageDailyRate: 180}
	reports := NewReportService(db, payments, defaults)

	seedPaidInvoice(t, invoices, []models.InvoiceItem{
		{Description: "Room 201 x2 nights", UnitPrice: 440, Category: models.CategoryAccommodation},
		{Description: "Catering", UnitPrice: 120, Category: models.CategoryCatering},
	})
	require.NoError(t, payments.Process(&models.Payment{Amount: 616, Method: models.PaymentMethodBankTransfer}))

	today := time.Now().UTC()
	report, err := reports.GenerateReport(models.ReportTypeDaily, today, today, "manager-1")
	require.NoError(t, err)
	assert.Equal(t, models.ReportTypeDaily, report.Type)
	assert.Equal(t, "manager-1", report.GeneratedBy)

	var data reportData
	require.NoError(t, json.Unmarshal(report.Data, &data))
	assert.Equal(t, 560.0, data.TotalRevenue)
	assert.Equal(t, 440.0, data.RoomRevenue)
	assert.Equal(t, 120.0, data.RestaurantRevenue)
	assert.Zero(t, data.BanquetRevenue)
	assert.Zero(t, data.OtherRevenue)
	assert.Equal(t, 616.0, data.PaymentMethods["bank transfer"])
	assert.Equal(t, 0.72, data.OccupancyRate)
	assert.Equal(t, "configured-default", data.OperationalMetricsSource)

	stored, err := reports.GetAll()
	require.NoError(t, err)
	require.Len(t, stored, 1)
}

func TestGenerateReportValidation(t *testing.T) {
	db := newTestDB(t)
	reports := NewReportService(db, NewPaymentService(db), OperationalDefaults{})

	today := time.Now().UTC()
	_, err := reports.GenerateReport("weekly", today, today, "manager-1")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = reports.GenerateReport(models.ReportTypeDaily, today, today.AddDate(0, 0, -1), "manager-1")
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestMonthlyTrendIsOldestFirst(t *testing.T) {
	db := newTestDB(t)
	invoices := NewInvoiceService(db, 0.10)
	reports := NewReportService(db, NewPaymentService(db), OperationalDefaults{})

	seedPaidInvoice(t, invoices, []models.InvoiceItem{
		{Description: "Room", UnitPrice: 450, Category: models.CategoryAccommodation},
	})

	trend, err := reports.GetMonthlyRevenueTrend(3)
	require.NoError(t, err)
	require.Len(t, trend, 3)

	now := time.Now().UTC()
	twoMonthsAgo := time.Date(now.Year(), now.Month()-2, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, twoMonthsAgo.Format("Jan 2006"), trend[0].Month)
	assert.Equal(t, now.Format("Jan 2006"), trend[2].Month)
	assert.Zero(t, trend[0].Revenue)
	assert.Equal(t, 450.0, trend[2].Revenue)
}
