package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-session-service/internal/config"
	"github.com/jrsteele09/go-session-service/server"
	"github.com/jrsteele09/go-session-service/sessions"
	"github.com/jrsteele09/go-session-service/token"
	"github.com/jrsteele09/go-session-service/token/refresh"
	"github.com/jrsteele09/go-session-service/tokenrecords"
	recordrepofake "github.com/jrsteele09/go-session-service/tokenrecords/repofake"
	"github.com/jrsteele09/go-session-service/users"
	userrepofake "github.com/jrsteele09/go-session-service/users/repofake"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
	log.Info().Msg("server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c, err := config.New()
	if err != nil {
		return err
	}
	displayAppname(c.GetAppName())

	ctx := context.Background()

	records, closeRecords, err := newTokenRecordRepo(ctx, c)
	if err != nil {
		return fmt.Errorf("token record store: %w", err)
	}
	defer closeRecords()

	identity, err := newIdentityProvider(c)
	if err != nil {
		return fmt.Errorf("identity provider: %w", err)
	}

	signer := token.NewHMACSigner(c.GetSigningSecret())
	issuer := token.NewIssuer(signer, c)
	generator := refresh.NewGenerator(c)

	sessionService, err := sessions.NewService(identity, records, issuer, generator, c)
	if err != nil {
		return fmt.Errorf("session service: %w", err)
	}

	httpServer := &http.Server{Addr: c.GetPort(), Handler: server.New(c, sessionService, issuer)}
	go listenAndServe(httpServer)
	waitForStopSignal()
	return shutdown(httpServer)
}

// newTokenRecordRepo selects the token record backend from configuration and
// returns it along with a close function.
func newTokenRecordRepo(ctx context.Context, c config.Config) (tokenrecords.Repo, func(), error) {
	switch c.GetStoreBackend() {
	case config.StoreBackendPostgres:
		pool, err := pgxpool.New(ctx, c.GetDatabaseDSN())
		if err != nil {
			return nil, nil, fmt.Errorf("pgxpool.New: %w", err)
		}
		return tokenrecords.NewPostgresRepo(pool), pool.Close, nil

	case config.StoreBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     c.GetRedisAddr(),
			Password: c.GetRedisPassword(),
		})
		return tokenrecords.NewRedisRepo(client), func() { _ = client.Close() }, nil

	case config.StoreBackendMemory:
		return recordrepofake.NewFakeTokenRecordRepo(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", c.GetStoreBackend())
	}
}

// newIdentityProvider wires the in-memory identity store and seeds the
// bootstrap user when configured. A production deployment replaces this with
// the real identity system behind users.IdentityProvider.
func newIdentityProvider(c config.Config) (users.IdentityProvider, error) {
	provider := userrepofake.NewFakeIdentityProvider()

	username, password := c.GetBootstrapUsername(), c.GetBootstrapPassword()
	if username == "" || password == "" {
		log.Warn().Msg("no bootstrap user configured; no logins will succeed until one is added")
		return provider, nil
	}

	roles := strings.Split(c.GetBootstrapRoles(), ",")
	if _, err := provider.AddUser(username, password, roles); err != nil {
		return nil, fmt.Errorf("seed bootstrap user: %w", err)
	}
	log.Info().Str("username", username).Strs("roles", roles).Msg("seeded bootstrap user")
	return provider, nil
}

func listenAndServe(server *http.Server) {
	log.Info().Str("addr", server.Addr).Msg("server listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("server.ListenAndServe")
	}
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
