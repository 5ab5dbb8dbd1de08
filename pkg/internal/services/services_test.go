package services

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	localCache "github.com/rarepublishers/rare/pkg/internal/cache"
	"github.com/rarepublishers/rare/pkg/internal/database"
	"github.com/rarepublishers/rare/pkg/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var cacheOnce sync.Once

// useTestDatabase points the global source at a fresh in-memory SQLite
// database so each test starts from an empty schema.
func useTestDatabase(t *testing.T) {
	t.Helper()

	cacheOnce.Do(func() {
		if err := localCache.NewStore(); err != nil {
			t.Fatalf("cache store: %v", err)
		}
	})

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	source, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := database.RunMigration(source); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	database.C = source
}

func mustCreateProfile(t *testing.T, name string) models.RareUser {
	t.Helper()

	account, err := CreateAccount(name, name+"@example.com", "opensesame")
	if err != nil {
		t.Fatalf("create account %s: %v", name, err)
	}
	profile, err := GetRareUserWithAccount(account.ID)
	if err != nil {
		t.Fatalf("get profile %s: %v", name, err)
	}
	return profile
}
