// Package activity defines the canonical activity record produced by the
// Garmin CSV ingestion pipeline, along with the parse diagnostics returned
// alongside it.
package activity

import "time"

// Type is the closed set of sport categories an activity can map to.
type Type string

const (
	TypeRunning  Type = "running"
	TypeCycling  Type = "cycling"
	TypeSwimming Type = "swimming"
	TypeWalking  Type = "walking"
	TypeHiking   Type = "hiking"
	TypeStrength Type = "strength"
	TypeYoga     Type = "yoga"
	TypeCardio   Type = "cardio"
	TypeRowing   Type = "rowing"
	TypePaddling Type = "paddling"
	TypeOther    Type = "other"
)

// Activity is one recorded exercise session. Distances are kilometers,
// durations seconds, elevation meters. Constructed once per valid CSV row
// and immutable thereafter.
type Activity struct {
	Date      time.Time `json:"date"`
	Type      Type      `json:"type"`
	Title     string    `json:"title"`
	Distance  float64   `json:"distance"`
	Duration  float64   `json:"duration"`
	Calories  int       `json:"calories"`
	Elevation int       `json:"elevation"`
	Favorite  bool      `json:"favorite"`
}

// ErrorType classifies a parse diagnostic.
type ErrorType string

const (
	ErrInvalidDate   ErrorType = "invalid-date"
	ErrMissingColumn ErrorType = "missing-column"
	ErrWrongLanguage ErrorType = "wrong-language"
	ErrUnknown       ErrorType = "unknown"
)

// ParseError is a single row-level (or file-level) diagnostic. Row numbers
// are 1-indexed and include the header row, so the first data row is 2.
// File-level errors use row 0.
type ParseError struct {
	Type    ErrorType `json:"type"`
	Row     int       `json:"row"`
	Message string    `json:"message"`
}

// ParseResult is the outcome of one ingestion call.
type ParseResult struct {
	Activities []Activity   `json:"activities"`
	Errors     []ParseError `json:"errors"`
}
