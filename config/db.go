package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"frontdesk-backend/models"

	"github.com/glebarez/sqlite"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "frontdesk_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// ConnectDatabase opens the store. The default driver is an in-memory sqlite
// database (front-desk data is session-scoped, nothing promises durability);
// DB_DRIVER=mysql switches to a persistent MySQL server.
func ConnectDatabase() error {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	var dialector gorm.Dialector
	switch envOrDefault("DB_DRIVER", "sqlite") {
	case "mysql":
		dsn, err := resolveMySQLDSN()
		if err != nil {
			return err
		}
		dialector = mysql.Open(dsn)
	default:
		dialector = sqlite.Open(envOrDefault("SQLITE_DSN", "file::memory:?cache=shared"))
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}
	DB = db

	if err := Migrate(DB); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

// Migrate creates the schema in parent->child order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.HotelSetting{},
		&models.Room{},
		&models.Guest{},
		&models.GuestDocument{},
		&models.Booking{},
		&models.RoomCharge{},
		&models.InvoiceSequence{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.Payment{},
		&models.FinancialReport{},
	)
}

// SeedDatabase loads demo data on an empty store.
func SeedDatabase() {
	var settingCount int64
	DB.Model(&models.HotelSetting{}).Count(&settingCount)
	if settingCount == 0 {
		setting := models.HotelSetting{
			Name:     "Horizon Hotel",
			Address:  "88 Seaview Road",
			Phone:    "+1 555 0188",
			Email:    "frontdesk@horizonhotel.example",
			Website:  "https://horizonhotel.example",
			Currency: "USD",
		}
		if err := DB.Create(&setting).Error; err != nil {
			log.Printf("warning: failed to seed hotel settings: %v", err)
		} else {
			log.Println("Hotel settings seeded")
		}
	}

	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		basic := datatypes.JSON([]byte(`["wifi","tv"]`))
		full := datatypes.JSON([]byte(`["wifi","tv","minibar","balcony"]`))

		rooms := []models.Room{
			{RoomNumber: "101", Type: "Standard", Floor: "1", Rate: 150, Currency: "USD", Status: models.RoomStatusClean, MaxOccupancy: 2, Amenities: basic},
			{RoomNumber: "102", Type: "Standard", Floor: "1", Rate: 150, Currency: "USD", Status: models.RoomStatusClean, MaxOccupancy: 2, Amenities: basic},
			{RoomNumber: "201", Type: "Superior", Floor: "2", Rate: 220, Currency: "USD", Status: models.RoomStatusClean, MaxOccupancy: 3, Amenities: basic},
			{RoomNumber: "202", Type: "Superior", Floor: "2", Rate: 220, Currency: "USD", Status: models.RoomStatusDirty, MaxOccupancy: 3, Amenities: basic},
			{RoomNumber: "301", Type: "Deluxe", Floor: "3", Rate: 340, Currency: "USD", Status: models.RoomStatusClean, MaxOccupancy: 4, Amenities: full},
			{RoomNumber: "302", Type: "Deluxe", Floor: "3", Rate: 340, Currency: "USD", Status: models.RoomStatusMaintenance, MaxOccupancy: 4, Amenities: full},
		}
		if err := DB.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Rooms seeded")
		}
	}
}
