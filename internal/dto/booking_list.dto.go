package dto

import "time"

type BookingListDTO struct {
	ID            string    `json:"id"`
	Reference     string    `json:"reference"`
	Status        string    `json:"status"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	StylistName   string    `json:"stylist_name"`
	ClientName    string    `json:"client_name"`
	ClientEmail   string    `json:"client_email"`
	ServiceCount  int       `json:"service_count"`
	TotalDuration int       `json:"total_duration"`
	TotalPriceMin string    `json:"total_price_min"`
	CreatedAt     time.Time `json:"created_at"`
}
