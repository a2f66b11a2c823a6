package models

import (
	"time"

	"github.com/google/uuid"
)

type Sentiment int

const (
	SentimentNegative Sentiment = 0
	SentimentPositive Sentiment = 1
)

// Review is one entry of the demo corpus. The same rows are mirrored into the
// Elasticsearch reviews index at seed time, keyed by ExternalID.
type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	ExternalID int       `gorm:"uniqueIndex;not null" json:"external_id"`
	Review     string    `gorm:"type:text;not null" json:"review"`
	Sentiment  int       `gorm:"not null" json:"sentiment"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
