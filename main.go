package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"frontdesk-backend/config"
	"frontdesk-backend/controllers"
	"frontdesk-backend/routes"
	"frontdesk-backend/services"
)

func taxRateFromEnv() float64 {
	raw := os.Getenv("TAX_RATE")
	if raw == "" {
		return services.DefaultTaxRate
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil || rate < 0 || rate >= 1 {
		log.Printf("⚠️  Invalid TAX_RATE %q, using default", raw)
		return services.DefaultTaxRate
	}
	return rate
}

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database ready and migrations applied.")

	// Initialize services
	roomService := services.NewRoomService(db)
	guestService := services.NewGuestService(db)
	bookingService := services.NewBookingService(db)
	invoiceService := services.NewInvoiceService(db, taxRateFromEnv())
	paymentService := services.NewPaymentService(db)
	reportService := services.NewReportService(db, paymentService, services.OperationalDefaults{})
	checkoutService := services.NewCheckoutService(db, invoiceService)
	reminderService := services.NewReminderService(db, invoiceService)

	// Initialize controllers
	roomController := controllers.NewRoomController(roomService)
	guestController := controllers.NewGuestController(guestService)
	bookingController := controllers.NewBookingController(bookingService, guestService, checkoutService)
	invoiceController := controllers.NewInvoiceController(invoiceService)
	paymentController := controllers.NewPaymentController(paymentService)
	reportController := controllers.NewReportController(reportService)

	// Build router
	router := routes.SetupRouter(
		roomController,
		guestController,
		bookingController,
		invoiceController,
		paymentController,
		reportController,
	)

	// Daily overdue-invoice sweep
	scheduler := reminderService.StartScheduler()
	defer scheduler.Stop()

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
