// Package reporting forwards crashes and transport failures to sentry. Without
// a DSN every call is a no-op.
package reporting

import (
	"fmt"
	"log"

	cfg "github.com/automoto/puckduel/config"
	"github.com/getsentry/sentry-go"
)

// Init configures the global sentry client.
func Init(dsn, environment, release string) error {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
		Release:     release,
	})
	if err != nil {
		return fmt.Errorf("init sentry: %w", err)
	}
	return nil
}

// Guard wraps fn so that a panic inside it is reported and returned as an
// error instead of taking down the process.
func Guard(component string, fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[%s] panic: %v", component, r)
				hub := sentry.CurrentHub().Clone()
				hub.ConfigureScope(func(scope *sentry.Scope) {
					scope.SetTag("component", component)
				})
				hub.Recover(r)
				hub.Flush(cfg.Net.ReportTimeout)
				err = fmt.Errorf("%s: panic: %v", component, r)
			}
		}()
		return fn()
	}
}

// CaptureError reports a non-fatal error tagged with its component.
func CaptureError(component string, err error) {
	if err == nil {
		return
	}
	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("component", component)
	})
	hub.CaptureException(err)
}

// Flush waits for queued events to be sent.
func Flush() {
	sentry.Flush(cfg.Net.ReportTimeout)
}
