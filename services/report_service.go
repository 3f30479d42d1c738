package services

import (
	"encoding/json"
	"fmt"
	"time"

	"frontdesk-backend/models"
	"frontdesk-backend/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RevenueBreakdown splits paid revenue into the four reporting buckets.
type RevenueBreakdown struct {
	Rooms      float64 `json:"rooms"`
	Restaurant float64 `json:"restaurant"`
	Banquet    float64 `json:"banquet"`
	Other      float64 `json:"other"`
}

// MonthRevenue is one point of the monthly trend, oldest first.
type MonthRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// OperationalDefaults are the occupancy-style metrics reports carry. They are
// configured placeholders, not derived values; reports label them as such.
type OperationalDefaults struct {
	OccupancyRate    float64 `json:"occupancyRate"`
	AverageDailyRate float64 `json:"averageDailyRate"`
	RevPAR           float64 `json:"revPAR"`
	CancellationRate float64 `json:"cancellationRate"`
	NoShowRate       float64 `json:"noShowRate"`
}

type ReportService struct {
	DB       *gorm.DB
	payments *PaymentService
	defaults OperationalDefaults
}

func NewReportService(db *gorm.DB, payments *PaymentService, defaults OperationalDefaults) *ReportService {
	return &ReportService{DB: db, payments: payments, defaults: defaults}
}

var restaurantCategories = []string{
	models.CategoryRestaurant,
	models.CategoryRoomService,
	models.CategoryDining,
	models.CategoryCatering,
}

var banquetCategories = []string{
	models.CategoryBanquet,
	models.CategoryEquipment,
	models.CategoryEvent,
}

func bucketForCategory(category string) string {
	switch category {
	case models.CategoryAccommodation:
		return "rooms"
	case models.CategoryRestaurant, models.CategoryRoomService,
		models.CategoryDining, models.CategoryCatering:
		return "restaurant"
	case models.CategoryBanquet, models.CategoryEquipment, models.CategoryEvent:
		return "banquet"
	}
	return "other"
}

func (s *ReportService) paidItemsInRange(start, end time.Time) *gorm.DB {
	return s.DB.Table("invoice_items").
		Joins("JOIN invoices ON invoices.id = invoice_items.invoice_id").
		Where("invoices.status = ?", models.InvoiceStatusPaid).
		Where("invoices.issue_date >= ? AND invoices.issue_date <= ?",
			utils.BeginningOfDay(start), utils.EndOfDay(end)).
		Where("invoices.deleted_at IS NULL")
}

// RevenueByPeriod sums item totals across paid invoices issued in
// [start, end] inclusive.
func (s *ReportService) RevenueByPeriod(start, end time.Time) (float64, error) {
	var total float64
	if err := s.paidItemsInRange(start, end).
		Select("COALESCE(SUM(invoice_items.total_price), 0)").
		Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to compute revenue: %w", err)
	}
	return utils.Round2(total), nil
}

// GetRevenueBreakdown buckets the same paid-invoice population by item
// category. The bucket sum always equals RevenueByPeriod for the same range.
func (s *ReportService) GetRevenueBreakdown(start, end time.Time) (RevenueBreakdown, error) {
	var rows []struct {
		Category   string
		TotalPrice float64
	}
	if err := s.paidItemsInRange(start, end).
		Select("invoice_items.category, invoice_items.total_price").
		Scan(&rows).Error; err != nil {
		return RevenueBreakdown{}, fmt.Errorf("failed to load items for breakdown: %w", err)
	}

	var bd RevenueBreakdown
	for _, row := range rows {
		switch bucketForCategory(row.Category) {
		case "rooms":
			bd.Rooms += row.TotalPrice
		case "restaurant":
			bd.Restaurant += row.TotalPrice
		case "banquet":
			bd.Banquet += row.TotalPrice
		default:
			bd.Other += row.TotalPrice
		}
	}

	bd.Rooms = utils.Round2(bd.Rooms)
	bd.Restaurant = utils.Round2(bd.Restaurant)
	bd.Banquet = utils.Round2(bd.Banquet)
	bd.Other = utils.Round2(bd.Other)
	return bd, nil
}

func (s *ReportService) revenueForCategories(start, end time.Time, categories []string) (float64, error) {
	var total float64
	if err := s.paidItemsInRange(start, end).
		Where("invoice_items.category IN ?", categories).
		Select("COALESCE(SUM(invoice_items.total_price), 0)").
		Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to compute category revenue: %w", err)
	}
	return utils.Round2(total), nil
}

// GetMonthlyRevenueTrend returns revenue for the last `months` calendar
// months including the current one, oldest first.
func (s *ReportService) GetMonthlyRevenueTrend(months int) ([]MonthRevenue, error) {
	if months <= 0 {
		months = 6
	}

	now := time.Now().UTC()
	trend := make([]MonthRevenue, 0, months)
	for i := months - 1; i >= 0; i-- {
		monthStart := utils.MonthStart(now).AddDate(0, -i, 0)
		monthEnd := utils.MonthEnd(monthStart)

		revenue, err := s.RevenueByPeriod(monthStart, monthEnd)
		if err != nil {
			return nil, err
		}
		trend = append(trend, MonthRevenue{
			Month:   monthStart.Format("Jan 2006"),
			Revenue: revenue,
		})
	}
	return trend, nil
}

// reportData is the aggregated payload stored on a FinancialReport.
type reportData struct {
	TotalRevenue      float64            `json:"totalRevenue"`
	RoomRevenue       float64            `json:"roomRevenue"`
	RestaurantRevenue float64            `json:"restaurantRevenue"`
	BanquetRevenue    float64            `json:"banquetRevenue"`
	OtherRevenue      float64            `json:"otherRevenue"`
	PaymentMethods    map[string]float64 `json:"paymentMethods"`

	OccupancyRate    float64 `json:"occupancyRate"`
	AverageDailyRate float64 `json:"averageDailyRate"`
	RevPAR           float64 `json:"revPAR"`
	CancellationRate float64 `json:"cancellationRate"`
	NoShowRate       float64 `json:"noShowRate"`

	// Marks the occupancy-style fields above as configured defaults rather
	// than computed values.
	OperationalMetricsSource string `json:"operationalMetricsSource"`
}

// GenerateReport snapshots the period's aggregates into the append-only
// report log. Category revenues are recomputed here independently of
// GetRevenueBreakdown.
func (s *ReportService) GenerateReport(reportType string, start, end time.Time, generatedBy string) (*models.FinancialReport, error) {
	switch reportType {
	case models.ReportTypeDaily, models.ReportTypeMonthly,
		models.ReportTypeYearly, models.ReportTypeCustom:
	default:
		return nil, fmt.Errorf("%w: unknown report type %q", ErrInvalidStatus, reportType)
	}
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	total, err := s.RevenueByPeriod(start, end)
	if err != nil {
		return nil, err
	}
	roomRevenue, err := s.revenueForCategories(start, end, []string{models.CategoryAccommodation})
	if err != nil {
		return nil, err
	}
	restaurantRevenue, err := s.revenueForCategories(start, end, restaurantCategories)
	if err != nil {
		return nil, err
	}
	banquetRevenue, err := s.revenueForCategories(start, end, banquetCategories)
	if err != nil {
		return nil, err
	}
	otherRevenue := utils.Round2(total - roomRevenue - restaurantRevenue - banquetRevenue)

	methodStats, err := s.payments.MethodStats(start, end)
	if err != nil {
		return nil, err
	}

	payload := reportData{
		TotalRevenue:      total,
		RoomRevenue:       roomRevenue,
		RestaurantRevenue: restaurantRevenue,
		BanquetRevenue:    banquetRevenue,
		OtherRevenue:      otherRevenue,
		PaymentMethods:    methodStats,

		OccupancyRate:    s.defaults.OccupancyRate,
		AverageDailyRate: s.defaults.AverageDailyRate,
		RevPAR:           s.defaults.RevPAR,
		CancellationRate: s.defaults.CancellationRate,
		NoShowRate:       s.defaults.NoShowRate,

		OperationalMetricsSource: "configured-default",
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report data: %w", err)
	}

	report := &models.FinancialReport{
		ID:          uuid.New(),
		Type:        reportType,
		StartDate:   utils.BeginningOfDay(start),
		EndDate:     utils.BeginningOfDay(end),
		Data:        datatypes.JSON(raw),
		GeneratedAt: time.Now().UTC(),
		GeneratedBy: generatedBy,
	}
	if err := s.DB.Create(report).Error; err != nil {
		return nil, fmt.Errorf("failed to store report: %w", err)
	}
	return report, nil
}

func (s *ReportService) GetAll() ([]models.FinancialReport, error) {
	var reports []models.FinancialReport
	if err := s.DB.Order("generated_at DESC").Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve reports: %w", err)
	}
	return reports, nil
}
