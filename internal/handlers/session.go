package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/epeers/fundsdash/internal/middleware"
	"github.com/epeers/fundsdash/internal/models"
	"github.com/epeers/fundsdash/internal/services"
)

const (
	hintMissingColumns = "The fund table needs a column whose name contains \"name\" (ideally \"Fund Name\") and one containing \"NAV\"."
	hintNoData         = "Place funds_clean.csv in the data directory (DATA_DIR) or set PG_URL and PG_TABLE, then refresh the page."
)

// sessionDeps gives handlers access to the dataset snapshot and the session's state
type sessionDeps struct {
	datasets *services.DatasetService
	sessions *services.SessionStore
}

// begin loads the dataset and the session state for a request. It writes the
// error response and returns false when the request cannot proceed.
func (d sessionDeps) begin(c *gin.Context) (*models.Dataset, string, *models.SessionState, bool) {
	ds, err := d.datasets.Current()
	if err != nil {
		writeDatasetError(c, err)
		return nil, "", nil, false
	}

	id, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "missing session id",
		})
		return nil, "", nil, false
	}

	state, err := d.sessions.Get(id, ds)
	if err != nil {
		log.Errorf("Failed to load session %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return nil, "", nil, false
	}
	return ds, id, &state, true
}

// save stores the session state, writing an error response on failure
func (d sessionDeps) save(c *gin.Context, id string, state *models.SessionState) bool {
	if err := d.sessions.Save(id, *state); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return false
	}
	return true
}

// writeDatasetError reports a dataset that could not be loaded. No view can be
// computed without it, so every dashboard route answers 503 with guidance.
func writeDatasetError(c *gin.Context, err error) {
	hint := hintNoData
	if errors.Is(err, services.ErrNoFundNameColumn) || errors.Is(err, services.ErrNoNAVColumn) {
		hint = hintMissingColumns
	}
	c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
		Error:   "no_data",
		Message: err.Error(),
		Hint:    hint,
	})
}

// writeBadRequest reports an invalid request body or state change
func writeBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "bad_request",
		Message: err.Error(),
	})
}
