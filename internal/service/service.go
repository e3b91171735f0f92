package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"

	"safesocket/internal/domain"
	"safesocket/internal/live"
	"safesocket/internal/repository"
)

// ErrValidation marks payloads the device sent malformed. Handlers map
// it to a 400 without leaking the parse detail to the client.
var ErrValidation = errors.New("invalid sensor payload")

// DefaultStatus is recorded when the device omits the status field.
const DefaultStatus = "Unknown"

type Services struct {
	Repos  *repository.Repos
	Live   *live.Store
	Ingest *IngestService
}

func New(db *sqlx.DB) *Services {
	repos := repository.New(db)
	lv := live.NewStore()
	return &Services{
		Repos:  repos,
		Live:   lv,
		Ingest: &IngestService{repos: repos, live: lv},
	}
}

// Amperes decodes a JSON number or a numeric string; some device
// firmwares quote the measurement.
type Amperes float64

func (a *Amperes) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: current %s", ErrValidation, data)
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%w: current %s", ErrValidation, data)
	}
	*a = Amperes(f)
	return nil
}

// SensorPayload is the body of POST /update_sensor. Both fields are
// optional; absence means current=0 and status=Unknown.
type SensorPayload struct {
	Current *Amperes `json:"current"`
	Status  *string  `json:"status"`
}

type IngestService struct {
	repos *repository.Repos
	live  *live.Store
}

// Ingest turns one device payload into a live-store update and one
// persisted reading. Both timestamp forms come from the same instant.
// The live store is written before the insert and is not rolled back
// if the insert fails.
func (s *IngestService) Ingest(body []byte, now time.Time) (*domain.Reading, error) {
	var p SensorPayload
	if err := json.Unmarshal(body, &p); err != nil {
		if errors.Is(err, ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	current := 0.0
	if p.Current != nil {
		current = float64(*p.Current)
	}
	status := DefaultStatus
	if p.Status != nil {
		status = *p.Status
	}

	power := math.Round(domain.Voltage*current*100) / 100

	s.live.Set(current, status, now.Format(domain.TimeOnlyFormat))

	rd := &domain.Reading{
		Timestamp: now.Format(domain.TimestampFormat),
		Current:   current,
		Voltage:   domain.Voltage,
		Power:     power,
		Status:    status,
	}
	if err := s.repos.InsertReading(rd); err != nil {
		return nil, err
	}
	return rd, nil
}
