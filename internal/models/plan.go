package models

import "time"

type TravelPlan struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Destination string    `json:"destination"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Budget      float64   `json:"budget"`
	Travelers   int       `json:"travelers"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}
