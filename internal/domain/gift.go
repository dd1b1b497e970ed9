package domain

import (
	"time"

	"github.com/google/uuid"
)

// Gift is a digital card sent from one person to another by email.
type Gift struct {
	ID             uuid.UUID
	SenderName     string
	RecipientName  string
	RecipientEmail string
	CardTemplate   string
	Message        string
	IsViewed       bool
	CreatedAt      time.Time
}
