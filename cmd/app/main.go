package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"github.com/xwasu/airline-project/api"
	"github.com/xwasu/airline-project/config"
	"github.com/xwasu/airline-project/internal/bootstrap"
	"github.com/xwasu/airline-project/internal/cache"
	"github.com/xwasu/airline-project/internal/kafka"
	"github.com/xwasu/airline-project/internal/migrations"
	"github.com/xwasu/airline-project/internal/repository"
	"github.com/xwasu/airline-project/internal/service/airports"
	"github.com/xwasu/airline-project/internal/service/auth"
	"github.com/xwasu/airline-project/internal/service/booking"
	"github.com/xwasu/airline-project/internal/service/flights"
	"github.com/xwasu/airline-project/internal/service/passengers"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrations.Up(cfg.Database.MigrateURL()); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, cfg.Cache.FlightsTTL())
	defer redisCache.Close()
	if err := redisCache.Ping(ctx); err != nil {
		log.Printf("WARNING: redis unavailable: %v", err)
	}

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()
	if err := producer.CheckConnection(ctx); err != nil {
		log.Printf("WARNING: kafka unavailable, booking events will be dropped: %v", err)
	}

	airportRepo := repository.NewAirportRepository(pool)
	passengerRepo := repository.NewPassengerRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	pageSize := cfg.Pagination.PageSize
	airportService := airports.NewAirportService(airportRepo, redisCache, pageSize)
	passengerService := passengers.NewPassengerService(passengerRepo, pageSize)
	flightService := flights.NewFlightService(flightRepo, airportRepo, redisCache, pageSize)
	bookingService := booking.NewBookingService(bookingRepo, flightRepo, passengerRepo, producer, cfg.Kafka.BookingEventsTopic,
		booking.WithPublishRetries(cfg.Kafka.PublishRetries))
	authService := auth.NewAuthService(userRepo, redisCache, cfg.Session.TTL(), cfg.Auth.BcryptCost)

	gate := api.NewGate(authService, cfg.Session.CookieName)
	limiter := api.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	router := api.NewRouter(gate, limiter, api.Handlers{
		Flights:    api.NewFlightHandler(flightService, airportService),
		Bookings:   api.NewBookingHandler(bookingService),
		Airports:   api.NewAirportHandler(airportService),
		Passengers: api.NewPassengerHandler(passengerService),
		Auth:       api.NewAuthHandler(authService, cfg.Session),
	})

	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
