package services

import (
	"testing"
	"time"

	"github.com/rarepublishers/rare/pkg/internal/database"
	"github.com/rarepublishers/rare/pkg/internal/models"
)

func TestPurgeDeletedRecords(t *testing.T) {
	useTestDatabase(t)

	stale := mustCreateCategory(t, "stale")
	fresh := mustCreateCategory(t, "fresh")

	for _, category := range []models.Category{stale, fresh} {
		if err := DeleteCategory(category); err != nil {
			t.Fatalf("delete category %s: %v", category.Label, err)
		}
	}

	// Push one deletion past the retention window.
	if err := database.C.Unscoped().Model(&models.Category{}).
		Where("id = ?", stale.ID).
		Update("deleted_at", time.Now().Add(-31*24*time.Hour)).Error; err != nil {
		t.Fatalf("backdate deletion: %v", err)
	}

	count, err := PurgeDeletedRecords()
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if count != 1 {
		t.Errorf("purged %d rows, want 1", count)
	}

	var remaining int64
	if err := database.C.Unscoped().Model(&models.Category{}).
		Count(&remaining).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if remaining != 1 {
		t.Errorf("%d rows left in the table, want 1", remaining)
	}
}
