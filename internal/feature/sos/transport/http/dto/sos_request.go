// Package dto defines data transfer objects for the sos feature's HTTP transport layer.
package dto

// Location carries the reported coordinates. Pointers distinguish an absent
// value from a legitimate zero coordinate.
type Location struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

// SOSReq represents the request body for the /api/sos endpoint.
// UserID is optional; nil means an anonymous signal.
type SOSReq struct {
	Location *Location `json:"location"`
	UserID   *uint     `json:"userId"`
}
