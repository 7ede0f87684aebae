package entities

import (
	"github.com/google/uuid"
)

type Product struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Barcode      string  `gorm:"type:varchar(255);not null;uniqueIndex" json:"barcode"`
	Name         string  `gorm:"type:varchar(255);not null" json:"name"`
	Description  *string `gorm:"type:text" json:"description,omitempty"`
	Manufacturer *string `gorm:"type:varchar(255)" json:"manufacturer,omitempty"`

	ThumbnailID    *uuid.UUID `gorm:"type:uuid;unique" json:"thumbnail_id,omitempty"`
	BarcodeImageID *uuid.UUID `gorm:"type:uuid;unique" json:"barcode_image_id,omitempty"`

	Thumbnail    *ImageData `gorm:"foreignKey:ThumbnailID" json:"-"`
	BarcodeImage *ImageData `gorm:"foreignKey:BarcodeImageID" json:"-"`
	Timestamp
}
