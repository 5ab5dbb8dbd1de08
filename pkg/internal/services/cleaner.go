package services

import (
	"time"

	"github.com/rarepublishers/rare/pkg/internal/database"
	"github.com/rarepublishers/rare/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// PurgeDeletedRecords hard-deletes soft-deleted rows once they are past the
// retention window.
func PurgeDeletedRecords() (int64, error) {
	retention := viper.GetDuration("security.deleted_retention")
	if retention <= 0 {
		retention = 30 * 24 * time.Hour
	}
	cutoff := time.Now().Add(-retention)

	var affected int64
	for _, model := range database.AutoMaintainRange {
		switch model.(type) {
		case *models.Subscription:
			// hard-deleted on removal already
		default:
			tx := database.C.Unscoped().
				Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
				Delete(model)
			if tx.Error != nil {
				return affected, tx.Error
			}
			affected += tx.RowsAffected
		}
	}

	return affected, nil
}

// DoAutoDatabaseCleanup sweeps rows nothing can reach anymore. Scheduled
// from main on an hourly cron.
func DoAutoDatabaseCleanup() {
	log.Debug().Msg("Now cleaning up expired auth tickets...")

	count, err := RevokeExpiredTickets()
	if err != nil {
		log.Error().Err(err).Msg("An error occurred when cleaning up auth tickets...")
		return
	}

	log.Debug().Int64("affected", count).Msg("Auth tickets cleaned up.")

	log.Debug().Msg("Now purging soft-deleted records past retention...")

	count, err = PurgeDeletedRecords()
	if err != nil {
		log.Error().Err(err).Msg("An error occurred when purging deleted records...")
		return
	}

	log.Debug().Int64("affected", count).Msg("Deleted records purged.")
}
