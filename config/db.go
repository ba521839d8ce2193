package config

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-management/models"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

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
		return "", errors.New("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "UTC")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

// DSN picks the connection string for the configured driver.
// MYSQL_URL wins over DATABASE_URL for mysql; discrete DB_* fields are the fallback.
func (d Database) DSN() (string, error) {
	switch d.Driver {
	case DriverMySQL, "":
		raw := strings.TrimSpace(d.MySQLURL)
		if raw == "" {
			raw = strings.TrimSpace(d.URL)
		}
		if raw != "" {
			if strings.HasPrefix(raw, "mysql://") {
				return mysqlDSNFromURL(raw)
			}
			return raw, nil
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			d.User, d.Password, d.Host, d.Port, d.Name,
		), nil
	case DriverPostgres:
		if raw := strings.TrimSpace(d.URL); raw != "" {
			return raw, nil
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			d.Host, d.User, d.Password, d.Name, d.Port,
		), nil
	case DriverSQLite:
		if raw := strings.TrimSpace(d.URL); raw != "" {
			return raw, nil
		}
		return d.Name + ".db", nil
	default:
		return "", errors.Errorf("unsupported DB_DRIVER %q", d.Driver)
	}
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// Open connects with the given driver and DSN without migrating.
func Open(driver, dsn string, level logger.LogLevel) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverMySQL, "":
		dialector = mysql.Open(dsn)
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, errors.Errorf("unsupported DB_DRIVER %q", driver)
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	return gorm.Open(dialector, &gorm.Config{
		Logger:                                   gormLogger,
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// Migrate creates or updates every table the API owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Booking{},
		&models.ServiceRequest{},
		&models.Inventory{},
		&models.MaintenanceTask{},
	)
}

// SeedAdmin creates the bootstrap admin account when the users table is empty.
func SeedAdmin(ctx context.Context, db *gorm.DB, seed Seed, zl *zap.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return errors.Wrap(err, "count users")
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash admin password")
	}

	admin := models.User{
		Username: seed.AdminUsername,
		Email:    strings.ToLower(seed.AdminEmail),
		Password: string(hash),
		Role:     models.RoleAdmin,
		FullName: "Admin User",
		IsActive: true,
	}
	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		return errors.Wrap(err, "create admin")
	}

	zl.Info("default admin seeded", zap.String("username", admin.Username))
	return nil
}

// ConnectDatabase opens the configured database, migrates it and seeds the admin account.
func ConnectDatabase(ctx context.Context, cfg Config, zl *zap.Logger) (*gorm.DB, error) {
	dsn, err := cfg.Database.DSN()
	if err != nil {
		return nil, err
	}

	db, err := Open(cfg.Database.Driver, dsn, gormLogLevel(cfg.Database.LogLevel))
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", cfg.Database.Driver)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		zl.Warn("cannot get raw sql.DB", zap.Error(err))
	}

	if err := Migrate(db); err != nil {
		return nil, errors.Wrap(err, "migrate")
	}

	if err := SeedAdmin(ctx, db, cfg.Seed, zl); err != nil {
		zl.Warn("admin seed skipped", zap.Error(err))
	}

	zl.Info("database ready", zap.String("driver", cfg.Database.Driver))
	return db, nil
}
