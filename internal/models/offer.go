package models

import "time"

type Offer struct {
	ID           int64     `json:"id"`
	AgencyID     int64     `json:"agency_id"`
	AgencyName   string    `json:"agency_name,omitempty"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Destination  string    `json:"destination"`
	Price        float64   `json:"price"`
	DurationDays int       `json:"duration_days"`
	Tags         []string  `json:"tags"`
	CreatedAt    time.Time `json:"created_at"`
}

// OfferFilter narrows the public offer list. Zero values disable a criterion.
type OfferFilter struct {
	Query       string
	Destination string
	Tag         string
	MinPrice    float64
	MaxPrice    float64
	MaxDays     int
}
