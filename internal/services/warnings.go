package services

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/epeers/fundsdash/internal/models"
)

type warningContextKey struct{}

// WarningCollector accumulates the degraded-feature and navigation warnings raised
// while one request or one dataset load runs. A warning with the same code and
// message is kept once.
type WarningCollector struct {
	mu       sync.Mutex
	warnings []models.Warning
}

// NewWarningContext returns a context carrying a fresh WarningCollector,
// plus a reference to the collector so the caller can read the warnings afterwards.
func NewWarningContext(ctx context.Context) (context.Context, *WarningCollector) {
	wc := &WarningCollector{}
	return context.WithValue(ctx, warningContextKey{}, wc), wc
}

// AddWarning records a warning on the collector in ctx.
// If ctx has no collector, the call is a no-op.
func AddWarning(ctx context.Context, w models.Warning) {
	wc, ok := ctx.Value(warningContextKey{}).(*WarningCollector)
	if !ok || wc == nil {
		return
	}
	wc.mu.Lock()
	defer wc.mu.Unlock()
	for _, existing := range wc.warnings {
		if existing == w {
			return
		}
	}
	wc.warnings = append(wc.warnings, w)
}

// Warnf logs a coded warning and records it on ctx
func Warnf(ctx context.Context, code models.WarningCode, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.WithField("code", code).Warn(msg)
	AddWarning(ctx, models.Warning{Code: code, Message: msg})
}

// ForwardWarnings records previously collected warnings, such as those stored on a
// dataset snapshot, on ctx.
func ForwardWarnings(ctx context.Context, warnings []models.Warning) {
	for _, w := range warnings {
		AddWarning(ctx, w)
	}
}

// GetWarnings returns a copy of the collected warnings in the order they were raised.
func (wc *WarningCollector) GetWarnings() []models.Warning {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	if len(wc.warnings) == 0 {
		return nil
	}
	return append([]models.Warning(nil), wc.warnings...)
}
