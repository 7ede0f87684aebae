package entities

import (
	"github.com/google/uuid"
)

type ImageData struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Data []byte    `gorm:"type:bytea;not null" json:"-"`

	Timestamp
}
