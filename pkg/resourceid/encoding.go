package resourceid

import (
	"database/sql/driver"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"gopkg.in/yaml.v3"
)

// The identifier travels as a plain string through every codec: JSON (via
// encoding.TextMarshaler), database/sql (which pgx and lib/pq consume),
// BSON, and YAML. Decoding always goes through Parse, so malformed stored
// data surfaces as the same *ParseError kinds as direct parsing.

// AppendText appends the textual form to b. It implements
// encoding.TextAppender and fails only for the zero value.
func (id ID[P]) AppendText(b []byte) ([]byte, error) {
	if id.IsZero() {
		return b, ErrZeroValue
	}
	var p P
	b = append(b, p.prefix()...)
	return append(b, id.suffix[:id.n]...), nil
}

// MarshalText implements encoding.TextMarshaler. The zero value is
// rejected with ErrZeroValue.
func (id ID[P]) MarshalText() ([]byte, error) {
	return id.AppendText(nil)
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse.
func (id *ID[P]) UnmarshalText(b []byte) error {
	parsed, err := Parse[P](string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Value implements driver.Valuer. The zero value maps to SQL NULL.
func (id ID[P]) Value() (driver.Value, error) {
	if id.IsZero() {
		return nil, nil
	}
	return id.String(), nil
}

// Scan implements sql.Scanner, accepting string, []byte, or NULL (which
// yields the zero value).
func (id *ID[P]) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*id = ID[P]{}
		return nil
	case string:
		return id.UnmarshalText([]byte(v))
	case []byte:
		return id.UnmarshalText(v)
	default:
		return fmt.Errorf("resourceid: cannot scan %T into %q id", src, id.Prefix())
	}
}

// MarshalBSONValue implements bson.ValueMarshaler; the identifier is
// stored as a BSON string.
func (id ID[P]) MarshalBSONValue() (byte, []byte, error) {
	if id.IsZero() {
		return 0, nil, ErrZeroValue
	}
	t, data, err := bson.MarshalValue(id.String())
	return byte(t), data, err
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (id *ID[P]) UnmarshalBSONValue(t byte, data []byte) error {
	var s string
	if err := bson.UnmarshalValue(bson.Type(t), data, &s); err != nil {
		return err
	}
	return id.UnmarshalText([]byte(s))
}

// MarshalYAML implements yaml.Marshaler; the identifier is emitted as a
// scalar string.
func (id ID[P]) MarshalYAML() (any, error) {
	if id.IsZero() {
		return nil, ErrZeroValue
	}
	return id.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (id *ID[P]) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return id.UnmarshalText([]byte(s))
}
