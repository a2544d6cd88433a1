package models

type DashboardStats struct {
	UsersByRole      map[string]int `json:"users_by_role"`
	AgenciesByStatus map[string]int `json:"agencies_by_status"`
	BookingsByStatus map[string]int `json:"bookings_by_status"`
	Offers           int            `json:"offers"`
	Revenue          float64        `json:"revenue"`
}
