// File: /models/types.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Participant is one join request on an event. Entries are unique per
// user and keep their insertion order.
type Participant struct {
	UserID     string `json:"user_id"`
	FullName   string `json:"full_name"`
	IsAccepted bool   `json:"is_accepted"`
}

// ParticipantList is a custom type for storing the ordered participant
// entries of an event as a JSON column.
type ParticipantList []Participant

// Value implements driver.Valuer interface for database storage
func (pl ParticipantList) Value() (driver.Value, error) {
	if pl == nil {
		return "[]", nil
	}
	return json.Marshal(pl)
}

// Scan implements sql.Scanner interface for database retrieval
func (pl *ParticipantList) Scan(value interface{}) error {
	if value == nil {
		*pl = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, pl)
	case string:
		return json.Unmarshal([]byte(v), pl)
	default:
		return fmt.Errorf("cannot scan %T into ParticipantList", value)
	}
}

// GormDataType returns the data type for GORM
func (ParticipantList) GormDataType() string {
	return "json"
}

// MarshalJSON implements json.Marshaler interface
func (pl ParticipantList) MarshalJSON() ([]byte, error) {
	if pl == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Participant(pl))
}

// Contains reports whether an entry exists for the given user.
func (pl ParticipantList) Contains(userID string) bool {
	for _, p := range pl {
		if p.UserID == userID {
			return true
		}
	}
	return false
}

// Remove returns the list without the given user's entry.
func (pl ParticipantList) Remove(userID string) ParticipantList {
	filtered := make(ParticipantList, 0, len(pl))
	for _, p := range pl {
		if p.UserID != userID {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
