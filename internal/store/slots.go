package store

import (
	"database/sql"
	"errors"
	"time"
)

// Slot is a stored key-value entry.
type Slot struct {
	Key       string `json:"key"`
	Size      int    `json:"size"`
	UpdatedAt int64  `json:"updated_at"` // unix millis
}

// ReadSlot returns the value stored under key. ok is false if the key was never written.
func (db *DB) ReadSlot(key string) ([]byte, bool, error) {
	var value []byte
	err := db.QueryRow(`SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// WriteSlot replaces the value stored under key.
func (db *DB) WriteSlot(key string, value []byte) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`
		INSERT INTO slots (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		key, value, now)
	return err
}

// ListSlots returns slot metadata ordered by key.
func (db *DB) ListSlots() ([]Slot, error) {
	rows, err := db.Query(`SELECT key, length(value), updated_at FROM slots ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var slots []Slot
	for rows.Next() {
		var s Slot
		if err := rows.Scan(&s.Key, &s.Size, &s.UpdatedAt); err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}
