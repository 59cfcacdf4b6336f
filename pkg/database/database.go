package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"shop-service/internal/model"
	"shop-service/pkg/config"
)

var db *gorm.DB

// InitDB initializes the database connection, runs migrations and seeds
// the order lookup tables. A lookup row the order engine depends on
// that cannot be created is a fatal configuration error.
func InitDB(cfg *config.Config) error {
	logLevel := logger.Error
	if cfg.Server.Env == "development" {
		logLevel = logger.Info
	}

	pgConfig := postgres.Config{
		DSN:                  cfg.Database.GetDSN(),
		PreferSimpleProtocol: true, // Disables implicit prepared statement usage
	}

	var err error
	db, err = gorm.Open(postgres.New(pgConfig), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := db.AutoMigrate(
		&model.Category{},
		&model.Tag{},
		&model.Product{},
		&model.ProductImage{},
		&model.ProductCharacteristic{},
		&model.Review{},
		&model.Discount{},
		&model.OrderStatus{},
		&model.DeliveryType{},
		&model.PaymentType{},
		&model.Order{},
		&model.OrderProduct{},
		&model.Cart{},
		&model.CartItem{},
		&model.User{},
		&model.UserProfile{},
	); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	if err := seedLookups(db); err != nil {
		return fmt.Errorf("failed to seed lookup tables: %w", err)
	}

	return nil
}

// seedLookups creates the lookup rows the order engine resolves by
// name. Existing rows are left untouched so admins may adjust prices.
func seedLookups(db *gorm.DB) error {
	for _, name := range []string{model.StatusNew, model.StatusAwaitingPayment, model.StatusPaid} {
		status := model.OrderStatus{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&status).Error; err != nil {
			return err
		}
	}

	deliveries := []model.DeliveryType{
		{Name: model.DeliveryOrdinary, Price: 0},
		{Name: model.DeliveryExpress, Price: 500},
	}
	for _, d := range deliveries {
		row := model.DeliveryType{Name: d.Name, Price: d.Price}
		if err := db.Where("name = ?", d.Name).FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}

	for _, name := range []string{model.PaymentOnline, model.PaymentSomeone} {
		payment := model.PaymentType{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&payment).Error; err != nil {
			return err
		}
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return db
}
