package models

import "time"

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingRejected  = "rejected"
	BookingCancelled = "cancelled"
	BookingExpired   = "expired"
)

type Booking struct {
	ID           int64     `json:"id"`
	Reference    string    `json:"reference"`
	OfferID      int64     `json:"offer_id"`
	OfferTitle   string    `json:"offer_title,omitempty"`
	AgencyID     int64     `json:"agency_id"`
	AgencyName   string    `json:"agency_name,omitempty"`
	ClientID     int64     `json:"client_id"`
	Travelers    int       `json:"travelers"`
	TravelDate   time.Time `json:"travel_date"`
	ContactName  string    `json:"contact_name"`
	ContactPhone string    `json:"contact_phone"`
	Notes        string    `json:"notes"`
	TotalPrice   float64   `json:"total_price"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// AgencyOwnerID is the user owning the offer's agency.
	AgencyOwnerID int64 `json:"-"`
}

// VisibleTo reports whether the user may read the booking.
func (b *Booking) VisibleTo(u *User) bool {
	switch u.Role {
	case RoleAdmin:
		return true
	case RoleAgency:
		return b.AgencyOwnerID == u.ID
	default:
		return b.ClientID == u.ID
	}
}
