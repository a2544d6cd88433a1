package postgres

import (
	"database/sql"
	"musaferBox/internal/models"
	"musaferBox/internal/storage"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDSNEnv names a disposable PostgreSQL database. Its tables are truncated by every test.
const testDSNEnv = "MUSAFER_TEST_DSN"

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dsn := os.Getenv(testDSNEnv)
	if dsn == "" {
		t.Skipf("%s is not set", testDSNEnv)
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Ping())
	require.NoError(t, migrate(db))

	_, err = db.Exec(`TRUNCATE users, sessions, agencies, offers, bookings, travel_plans RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return &Storage{DB: db}
}

func createClient(t *testing.T, s *Storage, email string) int64 {
	t.Helper()

	id, err := s.CreateUser(email, "hash", "Client "+email, models.RoleClient)
	require.NoError(t, err)

	return id
}

// createApprovedAgency returns the owner id and the agency id.
func createApprovedAgency(t *testing.T, s *Storage, email, name string) (int64, int64) {
	t.Helper()

	ownerID, err := s.CreateAgencyAccount(email, "hash", "Owner "+name, name)
	require.NoError(t, err)

	agency, err := s.AgencyByOwner(ownerID)
	require.NoError(t, err)
	require.Equal(t, models.AgencyPending, agency.Status)
	require.NoError(t, s.SetAgencyStatus(agency.ID, models.AgencyApproved))

	return ownerID, agency.ID
}

func createOffer(t *testing.T, s *Storage, ownerID int64, o models.Offer) int64 {
	t.Helper()

	id, err := s.CreateOffer(ownerID, o)
	require.NoError(t, err)

	return id
}

func createBooking(t *testing.T, s *Storage, offerID, clientID int64, travelers int) *models.Booking {
	t.Helper()

	b, err := s.CreateBooking(models.Booking{
		OfferID:      offerID,
		ClientID:     clientID,
		Travelers:    travelers,
		TravelDate:   time.Now().UTC().AddDate(0, 1, 0).Truncate(24 * time.Hour),
		ContactName:  "Ann Lee",
		ContactPhone: "+90 555 000 00 00",
	})
	require.NoError(t, err)

	return b
}

func offerTitles(offers []models.Offer) []string {
	titles := make([]string, 0, len(offers))
	for _, o := range offers {
		titles = append(titles, o.Title)
	}
	return titles
}

var antalya = models.Offer{Title: "Antalya sun", Destination: "Antalya", Price: 620, DurationDays: 7, Tags: []string{"Sea", "family"}}

func TestStorageCreateBooking(t *testing.T) {
	s := newTestStorage(t)

	clientID := createClient(t, s, "ann@example.com")
	ownerID, agencyID := createApprovedAgency(t, s, "desk@sunny.travel", "Sunny Tours")
	offerID := createOffer(t, s, ownerID, antalya)

	b := createBooking(t, s, offerID, clientID, 2)

	assert.Len(t, b.Reference, 4)
	n, err := strconv.Atoi(b.Reference)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 1000)
	assert.InDelta(t, 1240.0, b.TotalPrice, 1e-9)
	assert.Equal(t, models.BookingPending, b.Status)
	assert.Equal(t, "Antalya sun", b.OfferTitle)
	assert.Equal(t, agencyID, b.AgencyID)
	assert.Equal(t, ownerID, b.AgencyOwnerID)

	_, err = s.CreateBooking(models.Booking{OfferID: 9999, ClientID: clientID, Travelers: 1, TravelDate: b.TravelDate})
	assert.ErrorIs(t, err, storage.ErrOfferNotFound)

	require.NoError(t, s.SetAgencyStatus(agencyID, models.AgencyRejected))
	_, err = s.CreateBooking(models.Booking{OfferID: offerID, ClientID: clientID, Travelers: 1, TravelDate: b.TravelDate})
	assert.ErrorIs(t, err, storage.ErrOfferNotFound, "offers of rejected agencies are not bookable")
}

func TestStorageBookingTransitions(t *testing.T) {
	s := newTestStorage(t)

	clientID := createClient(t, s, "ann@example.com")
	otherClientID := createClient(t, s, "bob@example.com")
	ownerID, _ := createApprovedAgency(t, s, "desk@sunny.travel", "Sunny Tours")
	otherOwnerID, _ := createApprovedAgency(t, s, "desk@blue.travel", "Blue Tours")
	offerID := createOffer(t, s, ownerID, antalya)

	b := createBooking(t, s, offerID, clientID, 2)

	assert.ErrorIs(t, s.CancelBooking(b.ID, otherClientID), storage.ErrBookingNotFound)
	assert.ErrorIs(t, s.DecideBooking(b.ID, otherOwnerID, models.BookingConfirmed), storage.ErrBookingNotFound)
	assert.ErrorIs(t, s.DecideBooking(9999, ownerID, models.BookingConfirmed), storage.ErrBookingNotFound)
	assert.Error(t, s.DecideBooking(b.ID, ownerID, models.BookingCancelled))

	require.NoError(t, s.DecideBooking(b.ID, ownerID, models.BookingConfirmed))
	got, err := s.BookingByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, got.Status)

	assert.ErrorIs(t, s.DecideBooking(b.ID, ownerID, models.BookingRejected), storage.ErrBookingState)

	require.NoError(t, s.CancelBooking(b.ID, clientID))
	got, err = s.BookingByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, got.Status)

	assert.ErrorIs(t, s.CancelBooking(b.ID, clientID), storage.ErrBookingState)

	rejected := createBooking(t, s, offerID, clientID, 1)
	require.NoError(t, s.DecideBooking(rejected.ID, ownerID, models.BookingRejected))
	assert.ErrorIs(t, s.CancelBooking(rejected.ID, clientID), storage.ErrBookingState)

	pending := createBooking(t, s, offerID, clientID, 1)
	require.NoError(t, s.CancelBooking(pending.ID, clientID))

	mine, err := s.ListBookingsByClient(clientID)
	require.NoError(t, err)
	assert.Len(t, mine, 3)

	theirs, err := s.ListBookingsByAgency(otherOwnerID)
	require.NoError(t, err)
	assert.Empty(t, theirs)
}

func TestStorageOfferOwnershipAndArchive(t *testing.T) {
	s := newTestStorage(t)

	clientID := createClient(t, s, "ann@example.com")
	ownerID, _ := createApprovedAgency(t, s, "desk@sunny.travel", "Sunny Tours")
	otherOwnerID, _ := createApprovedAgency(t, s, "desk@blue.travel", "Blue Tours")
	offerID := createOffer(t, s, ownerID, antalya)

	offer, err := s.OfferByID(offerID)
	require.NoError(t, err)
	assert.Equal(t, []string{"sea", "family"}, offer.Tags)

	update := antalya
	update.ID = offerID
	update.Price = 700
	update.Tags = []string{"Beach", "beach", " "}

	assert.ErrorIs(t, s.UpdateOffer(otherOwnerID, update), storage.ErrOfferNotFound)
	require.NoError(t, s.UpdateOffer(ownerID, update))

	offer, err = s.OfferByID(offerID)
	require.NoError(t, err)
	assert.InDelta(t, 700.0, offer.Price, 1e-9)
	assert.Equal(t, []string{"beach"}, offer.Tags)

	b := createBooking(t, s, offerID, clientID, 2)
	require.NoError(t, s.DecideBooking(b.ID, ownerID, models.BookingConfirmed))

	assert.ErrorIs(t, s.DeleteOffer(offerID, otherOwnerID), storage.ErrOfferNotFound)
	require.NoError(t, s.DeleteOffer(offerID, ownerID))

	_, err = s.OfferByID(offerID)
	assert.ErrorIs(t, err, storage.ErrOfferNotFound)

	offers, err := s.ListOffers(models.OfferFilter{})
	require.NoError(t, err)
	assert.Empty(t, offers)

	assert.ErrorIs(t, s.DeleteOffer(offerID, ownerID), storage.ErrOfferNotFound)
	assert.ErrorIs(t, s.UpdateOffer(ownerID, update), storage.ErrOfferNotFound)

	_, err = s.CreateBooking(models.Booking{OfferID: offerID, ClientID: clientID, Travelers: 1, TravelDate: b.TravelDate})
	assert.ErrorIs(t, err, storage.ErrOfferNotFound)

	kept, err := s.BookingByID(b.ID)
	require.NoError(t, err, "bookings survive an archived offer")
	assert.Equal(t, models.BookingConfirmed, kept.Status)
	assert.Equal(t, "Antalya sun", kept.OfferTitle)

	otherOfferID := createOffer(t, s, otherOwnerID, models.Offer{Title: "Blue lagoon", Destination: "Fethiye", Price: 300, DurationDays: 3})
	require.NoError(t, s.DeleteOffer(otherOfferID, 0))

	stats, err := s.DashboardStats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Offers)
	assert.InDelta(t, 1400.0, stats.Revenue, 1e-9)
	assert.Equal(t, 1, stats.BookingsByStatus[models.BookingConfirmed])
}

func TestStorageListOffersFilters(t *testing.T) {
	s := newTestStorage(t)

	ownerID, _ := createApprovedAgency(t, s, "desk@sunny.travel", "Sunny Tours")
	hiddenOwnerID, hiddenAgencyID := createApprovedAgency(t, s, "desk@gray.travel", "Gray Tours")

	createOffer(t, s, ownerID, antalya)
	createOffer(t, s, ownerID, models.Offer{
		Title: "Cappadocia balloons", Description: "Sunrise flight", Destination: "Goreme",
		Price: 390.5, DurationDays: 2, Tags: []string{"adventure"},
	})
	createOffer(t, s, ownerID, models.Offer{Title: "Sunny Istanbul", Destination: "Istanbul", Price: 150, DurationDays: 3, Tags: []string{"city"}})
	createOffer(t, s, hiddenOwnerID, models.Offer{Title: "Gray Istanbul", Destination: "Istanbul", Price: 100, DurationDays: 1})
	require.NoError(t, s.SetAgencyStatus(hiddenAgencyID, models.AgencyRejected))

	testCases := []struct {
		name     string
		filter   models.OfferFilter
		expected []string
	}{
		{
			name:     "No filter, newest first",
			filter:   models.OfferFilter{},
			expected: []string{"Sunny Istanbul", "Cappadocia balloons", "Antalya sun"},
		},
		{
			name:     "Query matches title, description and destination",
			filter:   models.OfferFilter{Query: "SUN"},
			expected: []string{"Sunny Istanbul", "Cappadocia balloons", "Antalya sun"},
		},
		{
			name:     "Query matches description only",
			filter:   models.OfferFilter{Query: "sunrise"},
			expected: []string{"Cappadocia balloons"},
		},
		{
			name:     "Wildcards are literal",
			filter:   models.OfferFilter{Query: "%"},
			expected: []string{},
		},
		{
			name:     "Destination substring",
			filter:   models.OfferFilter{Destination: "ist"},
			expected: []string{"Sunny Istanbul"},
		},
		{
			name:     "Tag is case-insensitive",
			filter:   models.OfferFilter{Tag: "SEA"},
			expected: []string{"Antalya sun"},
		},
		{
			name:     "Price range",
			filter:   models.OfferFilter{MinPrice: 200, MaxPrice: 500},
			expected: []string{"Cappadocia balloons"},
		},
		{
			name:     "Combined criteria",
			filter:   models.OfferFilter{Query: "sun", MaxDays: 3, MaxPrice: 200},
			expected: []string{"Sunny Istanbul"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			offers, err := s.ListOffers(tc.filter)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, offerTitles(offers))
		})
	}
}

func TestStorageExpirePendingBookings(t *testing.T) {
	s := newTestStorage(t)

	clientID := createClient(t, s, "ann@example.com")
	ownerID, _ := createApprovedAgency(t, s, "desk@sunny.travel", "Sunny Tours")
	offerID := createOffer(t, s, ownerID, antalya)

	stale := createBooking(t, s, offerID, clientID, 1)
	fresh := createBooking(t, s, offerID, clientID, 1)
	confirmed := createBooking(t, s, offerID, clientID, 1)
	require.NoError(t, s.DecideBooking(confirmed.ID, ownerID, models.BookingConfirmed))

	_, err := s.DB.Exec(`UPDATE bookings SET created_at = NOW() - INTERVAL '3 hours' WHERE id IN ($1, $2)`, stale.ID, confirmed.ID)
	require.NoError(t, err)

	n, err := s.ExpirePendingBookings(time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	for id, status := range map[int64]string{
		stale.ID:     models.BookingExpired,
		fresh.ID:     models.BookingPending,
		confirmed.ID: models.BookingConfirmed,
	} {
		b, err := s.BookingByID(id)
		require.NoError(t, err)
		assert.Equal(t, status, b.Status, "booking %d", id)
	}

	assert.ErrorIs(t, s.CancelBooking(stale.ID, clientID), storage.ErrBookingState)

	n, err = s.ExpirePendingBookings(time.Hour)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStorageDeletePlan(t *testing.T) {
	s := newTestStorage(t)

	clientID := createClient(t, s, "ann@example.com")
	otherClientID := createClient(t, s, "bob@example.com")

	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	planID, err := s.CreatePlan(models.TravelPlan{
		UserID:      clientID,
		Destination: "Tbilisi",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 7),
		Budget:      1200,
		Travelers:   2,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, s.DeletePlan(planID, otherClientID), storage.ErrPlanNotFound)

	plans, err := s.ListPlans(clientID)
	require.NoError(t, err)
	require.Len(t, plans, 1)

	require.NoError(t, s.DeletePlan(planID, clientID))
	assert.ErrorIs(t, s.DeletePlan(planID, clientID), storage.ErrPlanNotFound)
}
