package domain

// Voltage is the fixed mains voltage assumed for every reading. The
// device only measures current; power is derived server-side.
const Voltage = 220.0

// Timestamp formats used across the service. The full form is stored,
// the time-only form is what the dashboard shows.
const (
	TimestampFormat = "2006-01-02 15:04:05"
	TimeOnlyFormat  = "15:04:05"
)

// Reading is one persisted measurement. Rows are append-only and never
// updated or deleted.
type Reading struct {
	ID        int64   `db:"id" json:"id"`
	Timestamp string  `db:"timestamp" json:"timestamp"`
	Current   float64 `db:"current" json:"current"`
	Voltage   float64 `db:"voltage" json:"voltage"`
	Power     float64 `db:"power" json:"power"`
	Status    string  `db:"status" json:"status"`
}

// HistoryPoint is one chart sample: time-of-day label plus power in watts.
type HistoryPoint struct {
	Label string
	Power float64
}

// LiveSnapshot is the most recent reading held in memory. It is not
// persisted and resets to its sentinel values on restart.
type LiveSnapshot struct {
	Current   float64 `json:"current"`
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
}
