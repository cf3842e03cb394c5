package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/puckduel/relay"
	"github.com/automoto/puckduel/reporting"
	"github.com/automoto/puckduel/shared/netconfig"
)

func main() {
	port := flag.Int("port", netconfig.DefaultRelayPort, "HTTP listen port")
	ttl := flag.Duration("ttl", netconfig.RoomTTL, "How long a room waits for a client")
	sweep := flag.Duration("sweep", 30*time.Second, "Interval between expiry sweeps")
	dsn := flag.String("sentry-dsn", "", "Sentry DSN (empty disables reporting)")
	flag.Parse()

	if err := reporting.Init(*dsn, "relay", ""); err != nil {
		log.Printf("[relay] %v", err)
	}
	defer reporting.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rooms := relay.NewRooms(*ttl, *sweep)
	defer rooms.Stop()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           relay.NewServer(rooms).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		log.Println("[relay] shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("[relay] starting on %s (TTL=%s)", srv.Addr, *ttl)
	err := reporting.Guard("relay", func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})()
	if err != nil {
		log.Fatalf("[relay] fatal: %v", err)
	}
}
