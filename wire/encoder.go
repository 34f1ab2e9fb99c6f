package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"sync"

	"github.com/clariontools/clarion-go/clarion"
)

var epool = sync.Pool{
	New: func() interface{} {
		return &Encoder{buf: &bytes.Buffer{}}
	},
}

// Field streams are big endian.
var endian = binary.BigEndian

// Encoder defines methods for encoding Clarion values into a tagged field
// stream. The struct is reusable, you can call Reset and start encoding
// new fresh values.
//
// Values are encoded in Big Endian byte order mark.
//
// To retrieve []byte of the encoded fields use Bytes.
type Encoder struct {
	buf *bytes.Buffer
}

// NewEncoder returns an Encoder instance from the pool.
func NewEncoder() *Encoder {
	return epool.Get().(*Encoder)
}

// PutEncoder resets e and returns it to the pool.
func PutEncoder(e *Encoder) {
	e.Reset()
	epool.Put(e)
}

// Reset resets the underlying buffer. This will remove any fields that
// were encoded before.
//
// Call this to reuse the Encoder and avoid unnecessary allocations.
func (e *Encoder) Reset() {
	e.buf.Reset()
}

// Bytes returns the buffered field stream.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of buffered bytes.
func (e *Encoder) Len() int {
	return e.buf.Len()
}

// Byte encodes a raw int8. This returns the number of bytes written and an
// error if any. For a successful encoding the number of bytes written is 1.
func (e *Encoder) Byte(v int8) (int, error) {
	return e.buf.Write([]byte{byte(v)})
}

// Int32 encodes a raw int32. For a successful encoding the number of bytes
// written is 4.
func (e *Encoder) Int32(v int32) (int, error) {
	b := make([]byte, integerSize)
	endian.PutUint32(b, uint32(v))
	return e.buf.Write(b)
}

// Int64 encodes a raw int64. For a successful encoding the number of bytes
// written is 8.
func (e *Encoder) Int64(v int64) (int, error) {
	b := make([]byte, longSize)
	endian.PutUint64(b, uint64(v))
	return e.buf.Write(b)
}

// String encodes a raw string, the size of the string as int32 followed by
// the raw bytes of the string.
func (e *Encoder) String(v string) (int, error) {
	s, err := e.Int32(int32(len(v)))
	if err != nil {
		return 0, err
	}
	n, err := e.buf.WriteString(v)
	if err != nil {
		return 0, err
	}
	return s + n, nil
}

// Date encodes a ClarionDate field, the DateField tag followed by the day
// offset as int32.
func (e *Encoder) Date(d clarion.ClarionDate) (int, error) {
	return e.tagged(DateField, d.Date())
}

// Time encodes a ClarionTime field, the TimeField tag followed by the
// centisecond offset as int32.
func (e *Encoder) Time(t clarion.ClarionTime) (int, error) {
	return e.tagged(TimeField, t.Time())
}

// Color encodes a ClarionColor field, the ColorField tag followed by the
// packed color as int32.
func (e *Encoder) Color(c clarion.ClarionColor) (int, error) {
	return e.tagged(ColorField, c.Color())
}

// RGB encodes an RGBColor field, the RGBField tag followed by the red,
// green and blue bytes.
func (e *Encoder) RGB(c clarion.RGBColor) (int, error) {
	s, err := e.Byte(RGBField)
	if err != nil {
		return 0, err
	}
	n, err := e.buf.Write([]byte{c.Red, c.Green, c.Blue})
	if err != nil {
		return 0, err
	}
	return s + n, nil
}

// Long encodes an int64 field, the LongField tag followed by the value.
func (e *Encoder) Long(v int64) (int, error) {
	s, err := e.Byte(LongField)
	if err != nil {
		return 0, err
	}
	n, err := e.Int64(v)
	if err != nil {
		return 0, err
	}
	return s + n, nil
}

// Text encodes a string field, the StringField tag followed by the
// length-prefixed string.
func (e *Encoder) Text(v string) (int, error) {
	s, err := e.Byte(StringField)
	if err != nil {
		return 0, err
	}
	n, err := e.String(v)
	if err != nil {
		return 0, err
	}
	return s + n, nil
}

func (e *Encoder) tagged(tag int8, v int32) (int, error) {
	s, err := e.Byte(tag)
	if err != nil {
		return 0, err
	}
	n, err := e.Int32(v)
	if err != nil {
		return 0, err
	}
	return s + n, nil
}

// Marshal encodes v as the field matching its Go type.
func (e *Encoder) Marshal(v interface{}) (int, error) {
	switch x := v.(type) {
	case clarion.ClarionDate:
		return e.Date(x)
	case clarion.ClarionTime:
		return e.Time(x)
	case clarion.ClarionColor:
		return e.Color(x)
	case clarion.RGBColor:
		return e.RGB(x)
	case int64:
		return e.Long(x)
	case string:
		return e.Text(x)
	default:
		return 0, errors.New("wire: unknown field type")
	}
}

// Record encodes a sequence of fields, prefixed with the field count as
// int32.
func (e *Encoder) Record(fields ...interface{}) (int, error) {
	total, err := e.Int32(int32(len(fields)))
	if err != nil {
		return 0, err
	}
	for _, f := range fields {
		n, err := e.Marshal(f)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}
