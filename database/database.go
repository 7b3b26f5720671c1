package database

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pesisir-api/models"
)

// Initialize opens the database. MySQL is the production driver; sqlite
// (pure Go) serves development and tests. TranslateError lets callers detect
// duplicate-key violations as gorm.ErrDuplicatedKey on either driver.
func Initialize(driver, databaseURL string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	}

	var (
		db  *gorm.DB
		err error
	)
	switch driver {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(databaseURL), cfg)
	default:
		db, err = gorm.Open(mysql.Open(databaseURL), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.AccessToken{},
		&models.Location{},
		&models.Activity{},
		&models.Volunteer{},
		&models.Complaint{},
		&models.Report{},
		&models.DonationMethod{},
		&models.Donation{},
		&models.OrphanFile{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}

// SeedData creates the admin account and the default donation methods.
// Existing rows are left untouched, so seeding is safe to run on every boot.
func SeedData(db *gorm.DB, adminEmail, adminPassword string) error {
	var userCount int64
	db.Model(&models.User{}).Where("email = ?", adminEmail).Count(&userCount)

	if userCount == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		admin := models.User{
			Name:     "Admin",
			Email:    adminEmail,
			Password: string(hashed),
		}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to seed admin user: %w", err)
		}
	}

	methods := []models.DonationMethod{
		{MethodName: "BSI", AccountNumber: "7327281881", OwnerName: "Arum Sekar Waradanti"},
		{MethodName: "BNI", AccountNumber: "1980326177", OwnerName: "Nirwasita Indrani"},
	}
	for _, method := range methods {
		var existing models.DonationMethod
		err := db.Where(models.DonationMethod{MethodName: method.MethodName}).
			Attrs(method).
			FirstOrCreate(&existing).Error
		if err != nil {
			fmt.Printf("Warning: Could not seed donation method %s: %v\n", method.MethodName, err)
		}
	}

	return nil
}
