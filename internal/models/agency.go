package models

import "time"

const (
	AgencyPending  = "pending"
	AgencyApproved = "approved"
	AgencyRejected = "rejected"
)

type Agency struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Phone       string    `json:"phone"`
	Website     string    `json:"website"`
	City        string    `json:"city"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AgencyProfile holds the fields an agency may edit itself.
type AgencyProfile struct {
	Name        string
	Description string
	Phone       string
	Website     string
	City        string
}
