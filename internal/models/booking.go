package models

import "time"

type Booking struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	Reference string `gorm:"size:20;uniqueIndex;not null" json:"reference"`
	Status    string `gorm:"size:20;default:'confirmed'" json:"status"`

	Services []BookingService `gorm:"constraint:OnDelete:CASCADE;" json:"services"`

	TotalDuration int    `json:"total_duration"`
	TotalPriceMin string `gorm:"size:20" json:"total_price_min"`

	Date string `gorm:"size:10;index;not null" json:"date"` // yyyy-MM-dd
	Time string `gorm:"size:10;not null" json:"time"`

	StylistID   int    `json:"stylist_id"`
	StylistName string `gorm:"size:100" json:"stylist_name"`

	ClientFirstName string `gorm:"size:100;not null" json:"client_first_name"`
	ClientLastName  string `gorm:"size:100;not null" json:"client_last_name"`
	ClientEmail     string `gorm:"size:100;not null" json:"client_email"`
	ClientPhone     string `gorm:"size:20;not null" json:"client_phone"`
	ClientNotes     string `gorm:"size:500" json:"client_notes"`

	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingService is one service line of a booking, denormalized from the
// catalog at booking time so later catalog edits don't rewrite history.
type BookingService struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	BookingID string `gorm:"size:36;index" json:"-"`

	Category string `gorm:"size:100" json:"category"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Price    string `gorm:"size:20" json:"price"`
	Duration int    `json:"duration"`
}
