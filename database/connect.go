package database

import (
	"cinema_admin/config"
	"cinema_admin/model"
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	DB    *gorm.DB
	Redis *redis.Client
)

func ConnectDB(cfg config.DatabaseConfig, log *zap.Logger) error {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	log.Info("connection opened to database", zap.String("host", cfg.Host), zap.String("db", cfg.Name))

	if err := Migrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	log.Info("database migrated")

	// khởi tạo dữ liệu
	SeedData(db, log)
	DB = db
	return nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Movie{},
		&model.Room{},
		&model.SeatType{},
		&model.Seat{},
		&model.Showtime{},
		&model.Order{},
		&model.OrderCombo{},
		&model.Ticket{},
	)
}

// ConnectRedis không lỗi nếu Redis không chạy: cache file vé sẽ tắt
func ConnectRedis(cfg config.RedisConfig, log *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unavailable, ticket cache disabled", zap.String("addr", cfg.Addr), zap.Error(err))
		_ = client.Close()
		return nil
	}

	Redis = client
	return client
}
