// Package save persists farm sessions to a local SQLite database, one row
// per save slot.
package save

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/appengine-ltd/homestead/internal/game"
)

// FormatVersion is bumped whenever the envelope layout changes shape in a
// way old readers cannot handle.
const FormatVersion = 1

// Envelope wraps the serialized farm with versioning metadata.
type Envelope struct {
	FormatVersion int            `json:"format_version"`
	SavedAt       time.Time      `json:"saved_at"`
	Farm          game.FarmState `json:"farm"`
}

// SlotInfo summarises one save slot for the load menu.
type SlotInfo struct {
	Slot    int       `db:"slot"`
	SavedAt time.Time `db:"-"`
	Level   int       `db:"-"`
	Money   int       `db:"-"`
}

type Store struct {
	conn *sqlx.DB
	log  *slog.Logger
}

// Open opens or creates the save database at path.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open save db: %w", err)
	}
	store := &Store{conn: conn, log: logger}
	if err := store.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate save db: %w", err)
	}
	return store, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS saves (
		slot INTEGER PRIMARY KEY,
		saved_at TEXT NOT NULL,
		payload TEXT NOT NULL
	);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Save writes the farm snapshot into the slot, replacing any previous save.
func (s *Store) Save(slot int, farm game.FarmState) error {
	envelope := Envelope{
		FormatVersion: FormatVersion,
		SavedAt:       time.Now().UTC(),
		Farm:          farm,
	}
	payload, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	_, err = s.conn.Exec(
		`INSERT INTO saves (slot, saved_at, payload) VALUES (?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET saved_at = excluded.saved_at, payload = excluded.payload`,
		slot, envelope.SavedAt.Format(time.RFC3339), string(payload),
	)
	if err != nil {
		return fmt.Errorf("write save slot %d: %w", slot, err)
	}
	s.log.Debug("saved farm", "slot", slot, "level", farm.Level, "money", farm.Money)
	return nil
}

// Load restores the farm stored in the slot. A missing slot or an unreadable
// payload yields a fresh farm rather than an error; the session must always
// be able to start.
func (s *Store) Load(slot int, config game.FarmConfig) (*game.FarmState, error) {
	var payload string
	err := s.conn.Get(&payload, `SELECT payload FROM saves WHERE slot = ?`, slot)
	if errors.Is(err, sql.ErrNoRows) {
		return game.NewFarmState(config), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read save slot %d: %w", slot, err)
	}

	var envelope Envelope
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		s.log.Warn("corrupt save payload, starting fresh", "slot", slot, "error", err)
		return game.NewFarmState(config), nil
	}
	if envelope.FormatVersion > FormatVersion {
		s.log.Warn("save from a newer version, starting fresh", "slot", slot, "format_version", envelope.FormatVersion)
		return game.NewFarmState(config), nil
	}
	return game.RestoreSnapshot(envelope.Farm, config), nil
}

// List reports the occupied slots, oldest slot first.
func (s *Store) List() ([]SlotInfo, error) {
	rows, err := s.conn.Queryx(`SELECT slot, saved_at, payload FROM saves ORDER BY slot`)
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	defer rows.Close()

	var infos []SlotInfo
	for rows.Next() {
		var slot int
		var savedAt, payload string
		if err := rows.Scan(&slot, &savedAt, &payload); err != nil {
			return nil, fmt.Errorf("scan save row: %w", err)
		}
		info := SlotInfo{Slot: slot}
		if ts, err := time.Parse(time.RFC3339, savedAt); err == nil {
			info.SavedAt = ts
		}
		var envelope Envelope
		if err := json.Unmarshal([]byte(payload), &envelope); err == nil {
			info.Level = envelope.Farm.Level
			info.Money = envelope.Farm.Money
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// Delete removes a slot. Deleting an empty slot is not an error.
func (s *Store) Delete(slot int) error {
	_, err := s.conn.Exec(`DELETE FROM saves WHERE slot = ?`, slot)
	if err != nil {
		return fmt.Errorf("delete save slot %d: %w", slot, err)
	}
	return nil
}
