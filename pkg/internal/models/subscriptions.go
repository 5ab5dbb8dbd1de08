package models

import "time"

// Subscription is the directional join between two profiles: the subscriber
// follows the target. The composite unique index keeps add idempotent at the
// store level; rows are hard-deleted so a pair can be re-added freely.
type Subscription struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	SubscriberID uint     `json:"subscriber_id" gorm:"uniqueIndex:idx_subscription_pair"`
	Subscriber   RareUser `json:"subscriber"`
	TargetID     uint     `json:"target_id" gorm:"uniqueIndex:idx_subscription_pair"`
	Target       RareUser `json:"target"`
}
