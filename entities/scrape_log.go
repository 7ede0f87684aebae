package entities

// ScrapeLog is an append-only audit record of one scrape attempt. A row is
// written for every attempt, whether or not parsing succeeds afterwards.
type ScrapeLog struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Barcode string `gorm:"type:varchar(255);not null;index" json:"barcode"`
	URL     string `gorm:"type:varchar(512);not null" json:"url"`
	HTML    string `gorm:"type:text;not null" json:"html"`

	Timestamp
}
