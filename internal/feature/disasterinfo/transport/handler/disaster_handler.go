// Package handler provides the HTTP handlers for the disasterinfo feature.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DatasetProvider exposes the startup-loaded disaster information.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (dataset).
type DatasetProvider interface {
	All() map[string]json.RawMessage
	Lookup(name string) (json.RawMessage, bool)
}

// DisasterHandler serves the read-only disaster dataset.
type DisasterHandler struct {
	data DatasetProvider
}

// NewDisasterHandler creates a new DisasterHandler with the injected dataset.
func NewDisasterHandler(data DatasetProvider) *DisasterHandler {
	return &DisasterHandler{data: data}
}

// Data handles GET /api/disaster_data and returns the full mapping exactly as
// it was loaded at startup.
func (h *DisasterHandler) Data(c *gin.Context) {
	c.JSON(http.StatusOK, h.data.All())
}

// Info handles GET /api/disaster_info/:type and returns one disaster's entry.
// Unknown types return an empty object, matching the page template behavior.
func (h *DisasterHandler) Info(c *gin.Context) {
	entry, ok := h.data.Lookup(c.Param("type"))
	if !ok {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, entry)
}
