package values

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerationID uniquely identifies one generation run, so batch reports and
// emitted program headers can be correlated in logs.
type GenerationID struct {
	value uuid.UUID
}

// NewGenerationID creates a new random generation ID
func NewGenerationID() GenerationID {
	return GenerationID{value: uuid.New()}
}

// ParseGenerationID parses a string into a GenerationID
func ParseGenerationID(s string) (GenerationID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return GenerationID{}, fmt.Errorf("invalid generation ID: %w", err)
	}
	return GenerationID{value: id}, nil
}

// String returns the string representation
func (g GenerationID) String() string {
	return g.value.String()
}

// IsZero returns true if this is the zero value
func (g GenerationID) IsZero() bool {
	return g.value == uuid.Nil
}

// Equals checks if two GenerationIDs are equal
func (g GenerationID) Equals(other GenerationID) bool {
	return g.value == other.value
}

// MarshalJSON implements json.Marshaler
func (g GenerationID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + g.value.String() + `"`), nil
}

// MarshalYAML implements yaml.Marshaler
func (g GenerationID) MarshalYAML() (interface{}, error) {
	return g.value.String(), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (g *GenerationID) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 {
		return fmt.Errorf("invalid generation ID JSON")
	}
	id, err := ParseGenerationID(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*g = id
	return nil
}
