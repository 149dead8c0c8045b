package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/myseringan/texnokross-bolt-sub000/internal/config"
	"github.com/myseringan/texnokross-bolt-sub000/internal/kvstore"
	"github.com/myseringan/texnokross-bolt-sub000/internal/localstore"
	"github.com/myseringan/texnokross-bolt-sub000/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Admin{},
		&models.User{},
		&models.PasswordResetCode{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Banner{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newTestLocalStore() *localstore.Store {
	return localstore.New(kvstore.NewMemoryStore())
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{SecretKey: "test-secret", ExpireHours: 1}
}
