package services

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// slowOperation is the duration above which a tracked call is logged at Info
const slowOperation = 500 * time.Millisecond

// TrackTime logs how long an operation took; use as defer TrackTime("Name", time.Now()).
func TrackTime(op string, start time.Time) {
	elapsed := time.Since(start)
	entry := log.WithFields(log.Fields{"op": op, "ms": elapsed.Milliseconds()})
	if elapsed > slowOperation {
		entry.Info("Slow operation")
		return
	}
	entry.Debug("Operation timing")
}
