package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	authsvc "github.com/Beto956/rvnb/internal/app/services/auth"
	bookingssvc "github.com/Beto956/rvnb/internal/app/services/bookings"
	calendarsvc "github.com/Beto956/rvnb/internal/app/services/calendarview"
	leadssvc "github.com/Beto956/rvnb/internal/app/services/leads"
	listingssvc "github.com/Beto956/rvnb/internal/app/services/listings"
	spotssvc "github.com/Beto956/rvnb/internal/app/services/spots"
	domainauth "github.com/Beto956/rvnb/internal/domain/auth"
	"github.com/Beto956/rvnb/internal/domain/booking"
	"github.com/Beto956/rvnb/internal/domain/calendar"
	"github.com/Beto956/rvnb/internal/domain/lead"
	domainlisting "github.com/Beto956/rvnb/internal/domain/listing"
	"github.com/Beto956/rvnb/internal/domain/spotrequest"
	domainuser "github.com/Beto956/rvnb/internal/domain/user"
	"github.com/Beto956/rvnb/internal/infra/broker/kafka"
	"github.com/Beto956/rvnb/internal/infra/config"
	mongostore "github.com/Beto956/rvnb/internal/infra/db/mongo"
	ginserver "github.com/Beto956/rvnb/internal/infra/http/gin"
	"github.com/Beto956/rvnb/internal/infra/obs"
	"github.com/Beto956/rvnb/internal/infra/outbox"
	"github.com/Beto956/rvnb/internal/infra/security"
	"github.com/Beto956/rvnb/internal/infra/storage/memory"
	"github.com/Beto956/rvnb/internal/infra/storage/s3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger := obs.NewLogger("dev")
		logger.Error("configuration invalid", "error", err)
		os.Exit(1)
	}
	logger := obs.NewLogger(cfg.Env)

	stores, ready, err := buildStores(cfg, logger)
	if err != nil {
		logger.Error("storage init failed", "error", err, "mode", cfg.StorageMode)
		os.Exit(1)
	}

	var photos listingssvc.PhotoStore
	if cfg.S3Endpoint != "" {
		client, err := s3.NewClient(cfg.S3Endpoint, cfg.S3UseSSL,
			cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3PublicEndpoint)
		if err != nil {
			logger.Warn("photo storage unavailable", "error", err)
		} else {
			photos = client
		}
	}

	authService := &authsvc.Service{
		Users:      stores.users,
		Sessions:   stores.sessions,
		Passwords:  security.BcryptHasher{Cost: cfg.BcryptCost},
		Tokens:     security.RandomTokenGenerator{},
		SessionTTL: cfg.SessionTTL,
		Logger:     logger,
	}
	listingService := &listingssvc.Service{
		Listings: stores.listings,
		Photos:   photos,
		Logger:   logger,
	}
	bookingService := &bookingssvc.Service{
		Bookings: stores.bookings,
		Listings: stores.listings,
		Outbox:   stores.outbox,
		Logger:   logger,
	}
	calendarService := &calendarsvc.Service{
		Listings: stores.listings,
		Bookings: stores.bookings,
		Meta:     stores.dayMeta,
		Logger:   logger,
	}
	spotService := &spotssvc.Service{Requests: stores.spotRequests, Logger: logger}
	leadService := &leadssvc.Service{Leads: stores.leads, Logger: logger}

	handlers := ginserver.Handlers{
		Auth:           ginserver.AuthHandler{Service: authService, Logger: logger},
		Listing:        ginserver.ListingHandler{Service: listingService, Logger: logger},
		Booking:        ginserver.BookingHandler{Service: bookingService, Logger: logger},
		HostListing:    ginserver.HostListingHandler{Service: listingService, Bookings: bookingService, Logger: logger},
		HostBooking:    ginserver.HostBookingHandler{Service: bookingService, Logger: logger},
		Calendar:       ginserver.CalendarHandler{Service: calendarService, Logger: logger},
		SpotRequest:    ginserver.SpotRequestHandler{Service: spotService, Logger: logger},
		Lead:           ginserver.LeadHandler{Service: leadService, Logger: logger},
		AuthMiddleware: ginserver.AuthMiddleware{Service: authService, Logger: logger}.Handle,
	}

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger},
		obs.HealthHandlers{Ready: ready}, handlers)

	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, nil)
		if err != nil {
			logger.Error("kafka producer init failed", "error", err)
			os.Exit(1)
		}
		defer producer.Close()
		worker := &outbox.Worker{
			Store:       stores.outbox,
			Producer:    producer,
			Interval:    cfg.OutboxPollInterval,
			TopicPrefix: cfg.KafkaTopicPrefix,
			Logger:      logger,
		}
		go func() {
			if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("outbox worker stopped", "error", err)
			}
		}()
	} else {
		logger.Info("kafka brokers not configured, events stay in the outbox")
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "storage", cfg.StorageMode)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

type stores struct {
	listings     domainlisting.Repository
	bookings     booking.Repository
	dayMeta      calendar.MetaRepository
	spotRequests spotrequest.Repository
	leads        lead.Repository
	users        domainuser.Repository
	sessions     domainauth.SessionStore
	outbox       outbox.Store
}

func buildStores(cfg config.Config, logger *slog.Logger) (stores, func() error, error) {
	if cfg.StorageMode == "mongo" {
		client, err := mongostore.New(cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return stores{}, nil, err
		}
		logger.Info("mongo storage attached", "db", cfg.MongoDB)
		ready := func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return client.Ping(ctx)
		}
		return stores{
			listings:     mongostore.NewListingRepository(client.DB),
			bookings:     mongostore.NewBookingRepository(client.DB),
			dayMeta:      mongostore.NewDayMetaRepository(client.DB),
			spotRequests: mongostore.NewSpotRequestRepository(client.DB),
			leads:        mongostore.NewLeadRepository(client.DB),
			users:        mongostore.NewUserRepository(client.DB),
			sessions:     mongostore.NewSessionStore(client.DB),
			outbox:       mongostore.NewOutboxStore(client.DB),
		}, ready, nil
	}

	logger.Info("using in-memory storage")
	return stores{
		listings:     memory.NewListingRepository(),
		bookings:     memory.NewBookingRepository(),
		dayMeta:      memory.NewDayMetaRepository(),
		spotRequests: memory.NewSpotRequestRepository(),
		leads:        memory.NewLeadRepository(),
		users:        memory.NewUserRepository(),
		sessions:     memory.NewSessionStore(),
		outbox:       memory.NewOutboxStore(),
	}, func() error { return nil }, nil
}
