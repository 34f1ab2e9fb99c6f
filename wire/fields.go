package wire

// Field tags. Every encoded field is a 1-byte tag followed by its payload.
const (
	DateField   int8 = 1 // int32 day offset from the Clarion epoch
	TimeField   int8 = 2 // int32 centiseconds since midnight
	ColorField  int8 = 3 // int32 packed blue-green-red color
	RGBField    int8 = 4 // red, green, blue bytes
	LongField   int8 = 6 // int64
	StringField int8 = 9 // string (int32-length-prefix)(utf-8 bytes)
)

// Sizes of encoded primitives.
const (
	tagSize     = 1
	integerSize = 4
	longSize    = 8
	rgbSize     = 3
)
