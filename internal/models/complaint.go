package models

import "time"

// Complaint is a single citizen-submitted report. The autoincrement ID gives
// stable recency ordering; records are immutable once created.
//
// ReporterEmail is always the authenticated caller's identity, attributed
// server-side. Latitude and Longitude are either both set or both nil.
// ImageFilename references a file in the content store that exists before
// the row is inserted.
type Complaint struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ReporterEmail string    `gorm:"not null;size:255;index" json:"reporter_email"`
	Description   string    `gorm:"type:text;not null" json:"description"`
	Latitude      *float64  `gorm:"type:decimal(10,8)" json:"latitude,omitempty"`
	Longitude     *float64  `gorm:"type:decimal(11,8)" json:"longitude,omitempty"`
	ImageFilename string    `gorm:"not null;size:255" json:"image_filename"`
	CreatedAt     time.Time `json:"created_at"`
}
