package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"frontdesk-backend/controllers"
	"frontdesk-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controller instances into the API surface the desk
// frontend consumes.
func SetupRouter(
	rc *controllers.RoomController,
	gc *controllers.GuestController,
	bc *controllers.BookingController,
	ic *controllers.InvoiceController,
	pc *controllers.PaymentController,
	rpc *controllers.ReportController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(), middleware.StaffIdentity())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "X-Staff-Name"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.POST("", rc.CreateRoom)
			rooms.GET("/:id", rc.GetRoomByID)
			rooms.PATCH("/:id", rc.UpdateRoom)
			rooms.PUT("/:id", rc.UpdateRoom)
			rooms.PATCH("/:id/status", rc.UpdateRoomStatus)
			rooms.GET("/:id/availability", bc.CheckAvailability)
		}

		guests := api.Group("/guests")
		{
			guests.GET("", gc.GetGuests)
			guests.GET("/:id", gc.GetGuestByID)
			guests.POST("", gc.CreateGuest)
			guests.PUT("/:id", gc.UpdateGuest)
			guests.POST("/:id/documents", gc.AddGuestDocument)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/:id", bc.GetBookingDetails)
			bookings.PATCH("/:id/status", bc.UpdateBookingStatus)
			bookings.POST("/:id/charges", bc.AddCharge)
			bookings.POST("/:id/checkout", bc.CheckoutBooking)
		}

		invoices := api.Group("/invoices")
		{
			invoices.GET("", ic.GetInvoices)
			invoices.POST("", ic.CreateInvoice)

			// fixed paths before /:id
			invoices.GET("/outstanding", ic.GetOutstanding)
			invoices.GET("/overdue", ic.GetOverdue)
			invoices.POST("/from-booking/:bookingId", ic.GenerateFromBooking)

			invoices.GET("/:id", ic.GetInvoice)
			invoices.POST("/:id/send", ic.SendInvoice)
			invoices.POST("/:id/pay", ic.MarkInvoicePaid)
			invoices.POST("/:id/reminders", ic.SendReminder)
		}

		payments := api.Group("/payments")
		{
			payments.GET("", pc.GetPayments)
			payments.POST("", pc.ProcessPayment)
			payments.GET("/stats", pc.GetMethodStats)
			payments.POST("/:id/refund", pc.RefundPayment)
		}

		reports := api.Group("/reports")
		{
			reports.GET("", rpc.GetReports)
			reports.POST("", rpc.GenerateReport)
			reports.GET("/revenue", rpc.GetRevenue)
			reports.GET("/revenue/breakdown", rpc.GetRevenueBreakdown)
			reports.GET("/revenue/trend", rpc.GetMonthlyTrend)
		}

		settings := api.Group("/settings")
		{
			settings.GET("/hotel", controllers.GetHotelSettings)
			settings.PUT("/hotel", controllers.UpdateHotelSettings)
		}
	}

	return r
}
