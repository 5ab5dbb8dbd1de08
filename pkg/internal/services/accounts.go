package services

import (
	"context"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/google/uuid"
	localCache "github.com/rarepublishers/rare/pkg/internal/cache"
	"github.com/rarepublishers/rare/pkg/internal/database"
	"github.com/rarepublishers/rare/pkg/internal/models"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func GetAccountWithID(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		return account, fmt.Errorf("unable to get account by id: %v", err)
	}
	return account, nil
}

// CreateAccount registers a new account and its publishing profile in one
// go. The profile row rides along on the association so a half-registered
// account can never be observed.
func CreateAccount(name, email, password string) (models.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Account{}, fmt.Errorf("unable to hash password: %v", err)
	}

	account := models.Account{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Profile: &models.RareUser{
			Active: true,
		},
	}

	if err := database.C.Create(&account).Error; err != nil {
		return account, err
	}

	return account, nil
}

func AuthenticateAccount(name, password string) (models.Account, error) {
	var account models.Account
	if err := database.C.
		Where("name = ? OR email = ?", name, name).
		First(&account).Error; err != nil {
		return account, fmt.Errorf("unable to find account: %v", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return account, fmt.Errorf("invalid credentials")
	}

	return account, nil
}

func GrantTicket(account models.Account) (models.AuthTicket, error) {
	lifetime := viper.GetDuration("security.ticket_lifetime")
	if lifetime <= 0 {
		lifetime = 24 * time.Hour
	}

	ticket := models.AuthTicket{
		Token:     uuid.NewString(),
		AccountID: account.ID,
		ExpiredAt: time.Now().Add(lifetime),
	}

	err := database.C.Save(&ticket).Error
	return ticket, err
}

func authorizeCacheKey(token string) string {
	return fmt.Sprintf("auth-ticket#%s", token)
}

// Authorize resolves a bearer token into its account. Resolved accounts are
// kept in the local cache for a short while to spare a query per request;
// the fallback path always re-checks expiry against the database.
func Authorize(token string) (models.Account, error) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	ctx := context.Background()

	if hit, err := marshal.Get(ctx, authorizeCacheKey(token), new(models.Account)); err == nil {
		return *hit.(*models.Account), nil
	}

	var ticket models.AuthTicket
	if err := database.C.
		Where("token = ? AND expired_at > ?", token, time.Now()).
		Preload("Account").
		First(&ticket).Error; err != nil {
		return models.Account{}, fmt.Errorf("unable to authorize: %v", err)
	}

	_ = marshal.Set(
		ctx,
		authorizeCacheKey(token),
		ticket.Account,
		store.WithExpiration(5*time.Minute),
		store.WithTags([]string{"auth-ticket", fmt.Sprintf("account#%d", ticket.AccountID)}),
	)

	return ticket.Account, nil
}

// DeleteAccount removes an account with everything its profile owns,
// mirroring a cascading account deletion event.
func DeleteAccount(account models.Account) error {
	profile, err := GetRareUserWithAccount(account.ID)
	if err != nil {
		return err
	}

	return database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ?", profile.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		var postIDs []uint
		if err := tx.Model(&models.Post{}).
			Where("author_id = ?", profile.ID).
			Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("author_id = ?", profile.ID).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		if err := tx.Where("subscriber_id = ? OR target_id = ?", profile.ID, profile.ID).
			Delete(&models.Subscription{}).Error; err != nil {
			return err
		}
		if err := tx.Where("account_id = ?", account.ID).Delete(&models.AuthTicket{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&profile).Error; err != nil {
			return err
		}
		return tx.Delete(&account).Error
	})
}

func RevokeExpiredTickets() (int64, error) {
	tx := database.C.Unscoped().
		Where("expired_at < ?", time.Now()).
		Delete(&models.AuthTicket{})
	return tx.RowsAffected, tx.Error
}
