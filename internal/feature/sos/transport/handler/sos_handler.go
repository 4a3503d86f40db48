// Package handler provides the HTTP handlers for the sos feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"disaster_backend/internal/api"
	"disaster_backend/internal/feature/sos/domain/entity"
	"disaster_backend/internal/feature/sos/transport/http/dto"
)

// SOSUsecase defines the ingestion operation consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SOSUsecase interface {
	Submit(ctx context.Context, lat, lon float64, userID *uint) (*entity.SOSMessage, error)
}

// SOSHandler handles HTTP requests for emergency signal submission.
type SOSHandler struct {
	sos SOSUsecase
}

// NewSOSHandler creates a new SOSHandler with the injected usecase.
func NewSOSHandler(sos SOSUsecase) *SOSHandler {
	return &SOSHandler{sos: sos}
}

// Submit handles the /api/sos endpoint.
// - 400 when location, lat, or lon is absent or not numeric
// - 500 on a persistence fault (details are logged, not returned)
// - 201 with the new report's id on success
func (h *SOSHandler) Submit(c *gin.Context) {
	var req dto.SOSReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("sos bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Success: false, Message: "invalid request body"})
		return
	}

	var missing string
	switch {
	case req.Location == nil:
		missing = "location"
	case req.Location.Lat == nil:
		missing = "lat"
	case req.Location.Lon == nil:
		missing = "lon"
	}
	if missing != "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Success: false, Message: "Missing field: '" + missing + "'"})
		return
	}

	msg, err := h.sos.Submit(c.Request.Context(), *req.Location.Lat, *req.Location.Lon, req.UserID)
	if err != nil {
		slog.Error("sos submit failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Success: false, Message: "internal server error"})
		return
	}

	slog.Info("sos message received", "sos_id", msg.ID, "lat", msg.Latitude, "lon", msg.Longitude, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.SOSResponse{
		Success: true,
		Message: "SOS message received!",
		SOSID:   msg.ID,
	})
}
