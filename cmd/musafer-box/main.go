package main

import (
	"context"
	"errors"
	"log/slog"
	"musaferBox/internal/chatbot"
	"musaferBox/internal/config"
	"musaferBox/internal/http-server/handlers/admin/dashboard"
	"musaferBox/internal/http-server/handlers/admin/deleteBooking"
	"musaferBox/internal/http-server/handlers/admin/deleteUser"
	"musaferBox/internal/http-server/handlers/admin/getAgencies"
	"musaferBox/internal/http-server/handlers/admin/getUsers"
	"musaferBox/internal/http-server/handlers/admin/moderateAgency"
	"musaferBox/internal/http-server/handlers/agency/getAgency"
	"musaferBox/internal/http-server/handlers/agency/getAllAgencies"
	"musaferBox/internal/http-server/handlers/agency/getProfile"
	"musaferBox/internal/http-server/handlers/agency/updateProfile"
	"musaferBox/internal/http-server/handlers/auth/login"
	"musaferBox/internal/http-server/handlers/auth/logout"
	"musaferBox/internal/http-server/handlers/auth/me"
	"musaferBox/internal/http-server/handlers/auth/register"
	"musaferBox/internal/http-server/handlers/booking/cancelBooking"
	"musaferBox/internal/http-server/handlers/booking/createBooking"
	"musaferBox/internal/http-server/handlers/booking/decideBooking"
	"musaferBox/internal/http-server/handlers/booking/getBooking"
	"musaferBox/internal/http-server/handlers/booking/getBookings"
	"musaferBox/internal/http-server/handlers/booking/getVoucher"
	"musaferBox/internal/http-server/handlers/chat/ask"
	"musaferBox/internal/http-server/handlers/chat/getQuestions"
	"musaferBox/internal/http-server/handlers/offer/createOffer"
	"musaferBox/internal/http-server/handlers/offer/deleteOffer"
	"musaferBox/internal/http-server/handlers/offer/getAllOffers"
	"musaferBox/internal/http-server/handlers/offer/getOffer"
	"musaferBox/internal/http-server/handlers/offer/updateOffer"
	"musaferBox/internal/http-server/handlers/plan/createPlan"
	"musaferBox/internal/http-server/handlers/plan/deletePlan"
	"musaferBox/internal/http-server/handlers/plan/getPlans"
	"musaferBox/internal/http-server/middleware/mwauth"
	"musaferBox/internal/http-server/middleware/mwlogger"
	"musaferBox/internal/janitor"
	"musaferBox/internal/lib/api/response"
	"musaferBox/internal/lib/logger/handlers/slogpretty"
	"musaferBox/internal/lib/logger/sl"
	"musaferBox/internal/lib/password"
	"musaferBox/internal/models"
	"musaferBox/internal/storage/postgres"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting musaferBox", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	if err = bootstrapAdmin(log, storage, cfg); err != nil {
		log.Error("failed to bootstrap admin", sl.Err(err))
		os.Exit(1)
	}

	entries, err := chatbot.Load(cfg.Chatbot.KnowledgeBase)
	if err != nil {
		log.Error("failed to load chatbot knowledge base", sl.Err(err))
		os.Exit(1)
	}

	bot, err := chatbot.New(entries, cfg.Chatbot.Threshold)
	if err != nil {
		log.Error("failed to init chatbot", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.OK())
	})

	authenticated := mwauth.New(log, storage)

	router.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", register.New(log, storage, cfg.Auth.BcryptCost))
		r.Post("/auth/login", login.New(log, storage, cfg.Auth.SessionTTL))

		r.Get("/offers", getAllOffers.New(log, storage))
		r.Get("/offers/{id}", getOffer.New(log, storage))
		r.Get("/agencies", getAllAgencies.New(log, storage))
		r.Get("/agencies/{id}", getAgency.New(log, storage))

		r.Post("/chat", ask.New(log, bot))
		r.Get("/chat/questions", getQuestions.New(bot))

		r.Group(func(r chi.Router) {
			r.Use(authenticated)

			r.Post("/auth/logout", logout.New(log, storage))
			r.Get("/auth/me", me.New(log))

			r.Get("/bookings", getBookings.New(log, storage))
			r.Get("/bookings/{id}", getBooking.New(log, storage))
			r.Get("/bookings/{id}/voucher", getVoucher.New(log, storage))

			r.Group(func(r chi.Router) {
				r.Use(mwauth.RequireRole(models.RoleClient))

				r.Post("/bookings", createBooking.New(log, storage))
				r.Post("/bookings/{id}/cancel", cancelBooking.New(log, storage))

				r.Get("/plans", getPlans.New(log, storage))
				r.Post("/plans", createPlan.New(log, storage))
				r.Delete("/plans/{id}", deletePlan.New(log, storage))
			})

			r.Route("/agency", func(r chi.Router) {
				r.Use(mwauth.RequireRole(models.RoleAgency))

				r.Get("/profile", getProfile.New(log, storage))
				r.Put("/profile", updateProfile.New(log, storage))

				r.Post("/offers", createOffer.New(log, storage))
				r.Put("/offers/{id}", updateOffer.New(log, storage))
				r.Delete("/offers/{id}", deleteOffer.New(log, storage))

				r.Post("/bookings/{id}/confirm", decideBooking.New(log, storage, models.BookingConfirmed))
				r.Post("/bookings/{id}/reject", decideBooking.New(log, storage, models.BookingRejected))
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(mwauth.RequireRole(models.RoleAdmin))

				r.Get("/dashboard", dashboard.New(log, storage))

				r.Get("/agencies", getAgencies.New(log, storage))
				r.Post("/agencies/{id}/approve", moderateAgency.New(log, storage, models.AgencyApproved))
				r.Post("/agencies/{id}/reject", moderateAgency.New(log, storage, models.AgencyRejected))

				r.Get("/bookings", getBookings.New(log, storage))
				r.Delete("/bookings/{id}", deleteBooking.New(log, storage))

				r.Delete("/offers/{id}", deleteOffer.New(log, storage))

				r.Get("/users", getUsers.New(log, storage))
				r.Delete("/users/{id}", deleteUser.New(log, storage))
			})
		})
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	janitorDone := make(chan struct{})

	go func() {
		defer close(janitorDone)
		janitor.New(log, storage, cfg.Booking.CleanupInterval, cfg.Booking.PendingTTL).Run(janitorCtx)
	}()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	stopJanitor()
	<-janitorDone

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

// bootstrapAdmin creates the configured admin account on first start.
func bootstrapAdmin(log *slog.Logger, storage *postgres.Storage, cfg *config.Config) error {
	hash, err := password.Hash(cfg.Admin.Password, cfg.Auth.BcryptCost)
	if err != nil {
		return err
	}

	created, err := storage.EnsureAdmin(cfg.Admin.Email, hash, cfg.Admin.FullName)
	if err != nil {
		return err
	}

	if created {
		log.Info("admin account created", slog.String("email", cfg.Admin.Email))
	}

	return nil
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
