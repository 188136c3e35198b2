package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Exercise is a catalog entry that workouts reference.
type Exercise struct {
	ID              uuid.UUID    `json:"id"`
	Name            string       `json:"name"`
	Description     *string      `json:"description"`
	MuscleGroups    MuscleGroups `json:"muscle_groups"`
	Equipment       *string      `json:"equipment"`
	DifficultyLevel *string      `json:"difficulty_level"`
	CreatedAt       time.Time    `json:"created_at"`
}

// MuscleGroups is stored as a JSON-encoded list and decoded on read.
// NULL and empty stored values decode to an empty, non-nil list.
type MuscleGroups []string

// Scan implements sql.Scanner.
func (m *MuscleGroups) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*m = MuscleGroups{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidMuscleGroups, src)
	}

	if len(raw) == 0 {
		*m = MuscleGroups{}
		return nil
	}

	var groups []string
	if err := json.Unmarshal(raw, &groups); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMuscleGroups, err)
	}
	if groups == nil {
		groups = []string{}
	}
	*m = groups
	return nil
}

// Value implements driver.Valuer.
func (m MuscleGroups) Value() (driver.Value, error) {
	if m == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(m))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// MarshalJSON keeps a nil list rendered as [] rather than null.
func (m MuscleGroups) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(m))
}
