package bigdecimal

import (
	"database/sql/driver"
	"encoding/binary"
	"math/big"

	"github.com/pkg/errors"
)

// binaryVersion is the version of the binary encoding.
const binaryVersion byte = 1

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also [Decimal.String].
func (d *Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also [Parse].
func (d *Decimal) UnmarshalText(text []byte) error {
	e, err := Parse(string(text))
	if err != nil {
		return errors.Wrap(err, "unmarshaling decimal")
	}
	d.setFrom(e)
	return nil
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
// The encoding is the gob encoding of the unscaled value, followed by the
// scale as a 4-byte big-endian integer and a version byte.
func (d *Decimal) MarshalBinary() ([]byte, error) {
	buf, err := d.coef.bigInt().GobEncode()
	if err != nil {
		return nil, err
	}
	buf = binary.BigEndian.AppendUint32(buf, uint32(d.scale))
	return append(buf, binaryVersion), nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
func (d *Decimal) UnmarshalBinary(data []byte) error {
	if len(data) < 5 {
		return errors.Wrapf(ErrMalformedInput, "binary decimal of %d bytes", len(data))
	}
	if v := data[len(data)-1]; v != binaryVersion {
		return errors.Wrapf(ErrMalformedInput, "binary decimal version %d", v)
	}
	n := len(data) - 5
	b := new(big.Int)
	if err := b.GobDecode(data[:n]); err != nil {
		return errors.Wrap(ErrMalformedInput, err.Error())
	}
	scale := int32(binary.BigEndian.Uint32(data[n : n+4]))
	d.setFrom(newDecimal(coefOfBig(b), scale))
	return nil
}

// Scan implements the [sql.Scanner] interface.
// It accepts strings, byte slices, integers and floats; floats are converted
// with [NewFromFloat64Shortest].
func (d *Decimal) Scan(value any) error {
	var (
		e   *Decimal
		err error
	)
	switch value := value.(type) {
	case string:
		e, err = Parse(value)
	case []byte:
		e, err = Parse(string(value))
	case int64:
		e = NewFromInt64(value)
	case float64:
		e, err = NewFromFloat64Shortest(value)
	case nil:
		err = errors.Wrap(ErrInvalidArgument, "converting NULL to decimal")
	default:
		err = errors.Wrapf(ErrInvalidArgument, "converting %T to decimal", value)
	}
	if err != nil {
		return err
	}
	d.setFrom(e)
	return nil
}

// Value implements the [driver.Valuer] interface.
func (d *Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}
