//go:build integration

package repository

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest"
	"github.com/stretchr/testify/require"
	"github.com/xwasu/airline-project/internal/domain"
	"github.com/xwasu/airline-project/internal/migrations"
)

func portActive(network, address string, timeout int) error {
	for i := 0; i < timeout; i++ {
		s, err := net.Dial(network, address)
		if err == nil {
			s.Close()
			return nil
		}
		time.Sleep(time.Second)
	}
	return errors.New("port is not open")
}

func postgresStart(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("Could not connect to docker: %s", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository:   "postgres",
		Tag:          "16-alpine",
		ExposedPorts: []string{"5432"},
		Env: []string{
			"POSTGRES_USER=airline",
			"POSTGRES_PASSWORD=airline",
			"POSTGRES_DB=airline",
		},
	})
	if err != nil {
		t.Fatalf("Could not start resource: %s", err)
	}
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Fatal(err)
		}
	})

	hostPort := resource.GetHostPort("5432/tcp")
	if err := portActive("tcp", hostPort, 30); err != nil {
		t.Fatalf("Could not connect to resource: %s", hostPort)
	}

	url := fmt.Sprintf("airline:airline@%s/airline?sslmode=disable", hostPort)
	err = pool.Retry(func() error {
		return migrations.Up("pgx5://" + url)
	})
	require.NoError(t, err)

	db, err := pgxpool.New(context.Background(), "postgres://"+url)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	return db
}

func TestPostgresRepositories(t *testing.T) {
	db := postgresStart(t)
	ctx := context.Background()

	airports := NewAirportRepository(db)
	passengers := NewPassengerRepository(db)
	flights := NewFlightRepository(db)
	bookings := NewBookingRepository(db)
	users := NewUserRepository(db)

	jfk := domain.Airport{Code: "JFK", City: "NewYork"}
	lhr := domain.Airport{Code: "LHR", City: "London"}
	require.NoError(t, airports.Create(ctx, &jfk))
	require.NoError(t, airports.Create(ctx, &lhr))

	t.Run("duplicate airport code", func(t *testing.T) {
		dup := domain.Airport{Code: "JFK", City: "Queens"}
		err := airports.Create(ctx, &dup)
		ve, ok := domain.AsValidationError(err)
		require.True(t, ok, "got %v", err)
		require.Equal(t, "Airport with this code already exists.", ve.Fields["code"])
	})

	alice := domain.Passenger{First: "Alice", Last: "Smith"}
	bob := domain.Passenger{First: "Bob", Last: "Jones"}
	require.NoError(t, passengers.Create(ctx, &alice))
	require.NoError(t, passengers.Create(ctx, &bob))

	flight := domain.Flight{OriginID: jfk.ID, DestinationID: lhr.ID, Duration: 415}
	require.NoError(t, flights.Create(ctx, &flight))

	t.Run("flight joined with airports", func(t *testing.T) {
		got, err := flights.GetByID(ctx, flight.ID)
		require.NoError(t, err)
		want := &domain.Flight{
			ID: flight.ID, OriginID: jfk.ID, DestinationID: lhr.ID,
			Origin: jfk, Destination: lhr, Duration: 415,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("GetByID (-want,+got)\n%s", diff)
		}
	})

	t.Run("booking is a set", func(t *testing.T) {
		added, err := bookings.Add(ctx, alice.ID, flight.ID)
		require.NoError(t, err)
		require.True(t, added)

		added, err = bookings.Add(ctx, alice.ID, flight.ID)
		require.NoError(t, err)
		require.False(t, added)

		booked, err := flights.Passengers(ctx, flight.ID)
		require.NoError(t, err)
		if diff := cmp.Diff([]domain.Passenger{alice}, booked); diff != "" {
			t.Errorf("Passengers (-want,+got)\n%s", diff)
		}

		others, err := flights.NonPassengers(ctx, flight.ID)
		require.NoError(t, err)
		if diff := cmp.Diff([]domain.Passenger{bob}, others); diff != "" {
			t.Errorf("NonPassengers (-want,+got)\n%s", diff)
		}

		removed, err := bookings.Remove(ctx, alice.ID, flight.ID)
		require.NoError(t, err)
		require.True(t, removed)

		removed, err = bookings.Remove(ctx, alice.ID, flight.ID)
		require.NoError(t, err)
		require.False(t, removed)
	})

	t.Run("unknown ids", func(t *testing.T) {
		_, err := flights.GetByID(ctx, 99999)
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.ErrorIs(t, passengers.Delete(ctx, 99999), domain.ErrNotFound)
		require.ErrorIs(t, airports.Update(ctx, &domain.Airport{ID: 99999, Code: "XXX", City: "Nowhere"}), domain.ErrNotFound)
	})

	t.Run("airport delete cascades to flights", func(t *testing.T) {
		_, err := bookings.Add(ctx, bob.ID, flight.ID)
		require.NoError(t, err)

		require.NoError(t, airports.Delete(ctx, lhr.ID))

		_, err = flights.GetByID(ctx, flight.ID)
		require.ErrorIs(t, err, domain.ErrNotFound)

		_, err = passengers.GetByID(ctx, bob.ID)
		require.NoError(t, err)
	})

	t.Run("long names and largest duration are stored", func(t *testing.T) {
		long := strings.Repeat("a", 300)
		far := domain.Airport{Code: "FAR", City: long}
		require.NoError(t, airports.Create(ctx, &far))

		p := domain.Passenger{First: long, Last: long}
		require.NoError(t, passengers.Create(ctx, &p))

		f := domain.Flight{OriginID: jfk.ID, DestinationID: far.ID, Duration: math.MaxInt32}
		require.NoError(t, flights.Create(ctx, &f))

		got, err := flights.GetByID(ctx, f.ID)
		require.NoError(t, err)
		require.Equal(t, long, got.Destination.City)
		require.Equal(t, math.MaxInt32, got.Duration)
	})

	t.Run("users", func(t *testing.T) {
		u := domain.User{Username: "admin", Email: "admin@example.com", PasswordHash: "hash"}
		require.NoError(t, users.Create(ctx, &u))
		require.NotZero(t, u.ID)

		dup := domain.User{Username: "admin", Email: "x@example.com", PasswordHash: "hash"}
		_, ok := domain.AsValidationError(users.Create(ctx, &dup))
		require.True(t, ok)

		got, err := users.GetByUsername(ctx, "admin")
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)

		_, err = users.GetByUsername(ctx, "nobody")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
