package models

import "time"

// ErrorResponse is the generic error payload used by endpoints that report
// failures under the "error" key (/api/test-db, /generate, checklist).
type ErrorResponse struct {
	Error string `json:"error"`
}

// DBStatusResponse is the success payload of the connectivity probe.
type DBStatusResponse struct {
	Now time.Time `json:"now"`
}
