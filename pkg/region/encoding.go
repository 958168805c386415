package region

import (
	"database/sql/driver"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"gopkg.in/yaml.v3"
)

// Regions travel as their canonical code string through every codec, and
// decoding always goes through Parse.

// MarshalText implements encoding.TextMarshaler. The zero value has no
// canonical code and is rejected with ErrUnknownRegion.
func (r Region) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: tag %d", ErrUnknownRegion, uint8(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse.
func (r *Region) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Value implements driver.Valuer. The zero value maps to SQL NULL.
func (r Region) Value() (driver.Value, error) {
	if !r.IsValid() {
		return nil, nil
	}
	return r.String(), nil
}

// Scan implements sql.Scanner, accepting string, []byte, or NULL (which
// yields the zero value).
func (r *Region) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*r = Unknown
		return nil
	case string:
		return r.UnmarshalText([]byte(v))
	case []byte:
		return r.UnmarshalText(v)
	default:
		return fmt.Errorf("region: cannot scan %T into Region", src)
	}
}

// MarshalBSONValue implements bson.ValueMarshaler; the region is stored
// as a BSON string.
func (r Region) MarshalBSONValue() (byte, []byte, error) {
	if !r.IsValid() {
		return 0, nil, fmt.Errorf("%w: tag %d", ErrUnknownRegion, uint8(r))
	}
	t, data, err := bson.MarshalValue(r.String())
	return byte(t), data, err
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (r *Region) UnmarshalBSONValue(t byte, data []byte) error {
	var s string
	if err := bson.UnmarshalValue(bson.Type(t), data, &s); err != nil {
		return err
	}
	return r.UnmarshalText([]byte(s))
}

// MarshalYAML implements yaml.Marshaler; the region is emitted as a
// scalar string.
func (r Region) MarshalYAML() (any, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: tag %d", ErrUnknownRegion, uint8(r))
	}
	return r.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Region) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return r.UnmarshalText([]byte(s))
}
