package getAllOffers

import (
	"fmt"
	"log/slog"
	"musaferBox/internal/lib/api/response"
	"musaferBox/internal/lib/logger/sl"
	"musaferBox/internal/models"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/render"
)

type OffersResponse struct {
	response.Response
	Offers []models.Offer `json:"offers"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OffersGetter
type OffersGetter interface {
	ListOffers(filter models.OfferFilter) ([]models.Offer, error)
}

func New(log *slog.Logger, offersGetter OffersGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.offer.getAllOffers.New"

		log := log.With(slog.String("op", op))

		filter, err := parseFilter(r.URL.Query())
		if err != nil {
			log.Error("invalid filter", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		offers, err := offersGetter.ListOffers(filter)
		if err != nil {
			log.Error("failed to get offers", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get offers"))
			return
		}

		log.Info("offers retrieved successfully", slog.Int("count", len(offers)))

		responseOK(w, r, offers)
	}
}

func parseFilter(q url.Values) (models.OfferFilter, error) {
	filter := models.OfferFilter{
		Query:       strings.TrimSpace(q.Get("q")),
		Destination: strings.TrimSpace(q.Get("destination")),
		Tag:         strings.TrimSpace(q.Get("tag")),
	}

	var err error

	if filter.MinPrice, err = parsePrice(q, "min_price"); err != nil {
		return filter, err
	}
	if filter.MaxPrice, err = parsePrice(q, "max_price"); err != nil {
		return filter, err
	}
	if filter.MinPrice > 0 && filter.MaxPrice > 0 && filter.MinPrice > filter.MaxPrice {
		return filter, fmt.Errorf("min_price is greater than max_price")
	}

	if v := q.Get("max_days"); v != "" {
		filter.MaxDays, err = strconv.Atoi(v)
		if err != nil || filter.MaxDays < 1 {
			return filter, fmt.Errorf("invalid max_days")
		}
	}

	return filter, nil
}

func parsePrice(q url.Values, key string) (float64, error) {
	v := q.Get(key)
	if v == "" {
		return 0, nil
	}

	price, err := strconv.ParseFloat(v, 64)
	if err != nil || price < 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}

	return price, nil
}

func responseOK(w http.ResponseWriter, r *http.Request, offers []models.Offer) {
	render.JSON(w, r, OffersResponse{
		Response: response.OK(),
		Offers:   offers,
	})
}
