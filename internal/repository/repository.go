package repository

import (
	"strings"

	"github.com/jmoiron/sqlx"

	"safesocket/internal/domain"
)

type Repos struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repos { return &Repos{db: db} }

func (r *Repos) InsertReading(rd *domain.Reading) error {
	res, err := r.db.Exec(
		`INSERT INTO readings(timestamp, current, voltage, power, status) VALUES (?,?,?,?,?)`,
		rd.Timestamp, rd.Current, rd.Voltage, rd.Power, rd.Status)
	if err != nil {
		return err
	}
	rd.ID, err = res.LastInsertId()
	return err
}

// RecentHistory returns the limit most recent readings in ascending
// chronological order, keeping only the time-of-day part of each
// stored timestamp. The chart renders left to right, oldest first.
func (r *Repos) RecentHistory(limit int) ([]domain.HistoryPoint, error) {
	var rows []struct {
		Timestamp string  `db:"timestamp"`
		Power     float64 `db:"power"`
	}
	err := r.db.Select(&rows,
		`SELECT timestamp, power FROM readings ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.HistoryPoint, len(rows))
	for i, row := range rows {
		label := row.Timestamp
		if j := strings.IndexByte(label, ' '); j >= 0 {
			label = label[j+1:]
		}
		out[len(rows)-1-i] = domain.HistoryPoint{Label: label, Power: row.Power}
	}
	return out, nil
}
