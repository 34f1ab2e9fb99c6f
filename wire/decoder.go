package wire

import (
	"fmt"
	"io"

	"github.com/clariontools/clarion-go/clarion"
)

// Decoder reads Clarion field streams produced by Encoder.
type Decoder struct {
	r io.Reader
}

// NewDecoder returns a new Decoder that decodes fields read from src.
func NewDecoder(src io.Reader) *Decoder {
	return &Decoder{r: src}
}

// SetReader replaces the underlying reader, the next call to decode
// methods will read from this.
func (d *Decoder) SetReader(r io.Reader) {
	d.r = r
}

// Reset clears the underlying io.Reader. This sets the reader to nil.
func (d *Decoder) Reset() {
	d.r = nil
}

// Byte reads a raw int8.
func (d *Decoder) Byte() (int8, error) {
	var a [tagSize]byte
	if _, err := io.ReadFull(d.r, a[:]); err != nil {
		return 0, err
	}
	return int8(a[0]), nil
}

// Int32 reads a raw big endian int32.
func (d *Decoder) Int32() (int32, error) {
	var a [integerSize]byte
	if _, err := io.ReadFull(d.r, a[:]); err != nil {
		return 0, err
	}
	return int32(endian.Uint32(a[:])), nil
}

// Int64 reads a raw big endian int64.
func (d *Decoder) Int64() (int64, error) {
	var a [longSize]byte
	if _, err := io.ReadFull(d.r, a[:]); err != nil {
		return 0, err
	}
	return int64(endian.Uint64(a[:])), nil
}

// String reads a raw length-prefixed string.
func (d *Decoder) String() (string, error) {
	size, err := d.Int32()
	if err != nil {
		return "", err
	}
	if size < 0 {
		return "", fmt.Errorf("wire: negative string length %d", size)
	}
	b := make([]byte, size)
	if _, err := io.ReadFull(d.r, b); err != nil {
		return "", err
	}
	return string(b), nil
}

// Date reads a ClarionDate field.
func (d *Decoder) Date() (clarion.ClarionDate, error) {
	if err := d.expect(DateField); err != nil {
		return clarion.ClarionDate{}, err
	}
	v, err := d.Int32()
	if err != nil {
		return clarion.ClarionDate{}, err
	}
	return clarion.NewDate(v), nil
}

// Time reads a ClarionTime field.
func (d *Decoder) Time() (clarion.ClarionTime, error) {
	if err := d.expect(TimeField); err != nil {
		return clarion.ClarionTime{}, err
	}
	v, err := d.Int32()
	if err != nil {
		return clarion.ClarionTime{}, err
	}
	return clarion.NewTime(v), nil
}

// Color reads a ClarionColor field. The payload goes through
// clarion.NewColor, so a corrupt stream surfaces clarion.ErrOutOfRange.
func (d *Decoder) Color() (clarion.ClarionColor, error) {
	if err := d.expect(ColorField); err != nil {
		return clarion.ClarionColor{}, err
	}
	v, err := d.Int32()
	if err != nil {
		return clarion.ClarionColor{}, err
	}
	return clarion.NewColor(v)
}

// RGB reads an RGBColor field.
func (d *Decoder) RGB() (clarion.RGBColor, error) {
	if err := d.expect(RGBField); err != nil {
		return clarion.RGBColor{}, err
	}
	var a [rgbSize]byte
	if _, err := io.ReadFull(d.r, a[:]); err != nil {
		return clarion.RGBColor{}, err
	}
	return clarion.RGBColor{Red: a[0], Green: a[1], Blue: a[2]}, nil
}

// Long reads an int64 field.
func (d *Decoder) Long() (int64, error) {
	if err := d.expect(LongField); err != nil {
		return 0, err
	}
	return d.Int64()
}

// Text reads a string field.
func (d *Decoder) Text() (string, error) {
	if err := d.expect(StringField); err != nil {
		return "", err
	}
	return d.String()
}

// Field reads the next field, whichever its tag names.
func (d *Decoder) Field() (interface{}, error) {
	tag, err := d.Byte()
	if err != nil {
		return nil, err
	}
	switch tag {
	case DateField:
		v, err := d.Int32()
		if err != nil {
			return nil, err
		}
		return clarion.NewDate(v), nil
	case TimeField:
		v, err := d.Int32()
		if err != nil {
			return nil, err
		}
		return clarion.NewTime(v), nil
	case ColorField:
		v, err := d.Int32()
		if err != nil {
			return nil, err
		}
		return clarion.NewColor(v)
	case RGBField:
		var a [rgbSize]byte
		if _, err := io.ReadFull(d.r, a[:]); err != nil {
			return nil, err
		}
		return clarion.RGBColor{Red: a[0], Green: a[1], Blue: a[2]}, nil
	case LongField:
		return d.Int64()
	case StringField:
		return d.String()
	default:
		return nil, fmt.Errorf("wire: unknown field tag %d", tag)
	}
}

// Record reads a count-prefixed sequence of fields, the inverse of
// Encoder.Record.
func (d *Decoder) Record() ([]interface{}, error) {
	count, err := d.Int32()
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("wire: negative field count %d", count)
	}
	fields := make([]interface{}, 0, count)
	for i := int32(0); i < count; i++ {
		f, err := d.Field()
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func (d *Decoder) expect(want int8) error {
	tag, err := d.Byte()
	if err != nil {
		return err
	}
	if tag != want {
		return fmt.Errorf("wire: unexpected field tag %d, want %d", tag, want)
	}
	return nil
}
