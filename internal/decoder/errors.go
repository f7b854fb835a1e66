package decoder

import "fmt"

// DecodeErrorKind classifies a DecodeError without a type assertion per variant.
type DecodeErrorKind int

const (
	// KindBadMagic indicates the blob's leading bytes don't match MAGIC.
	KindBadMagic DecodeErrorKind = iota
	// KindTruncated indicates the buffer ended before a required field was fully read.
	KindTruncated
	// KindVarintOverflow indicates a varint ran beyond 10 bytes without terminating.
	KindVarintOverflow
	// KindUnsupportedGeometryKind indicates the flags nibble is outside {1,2,4,8}.
	KindUnsupportedGeometryKind
	// KindEmptyGeometry indicates point_count==0 for a shape requiring at least one point.
	KindEmptyGeometry
	// KindInvalidCoordinateStream indicates the part-info skip loop ran off the end
	// of the buffer before finding an absolute coordinate.
	KindInvalidCoordinateStream
	// KindTruncatedZStream indicates fewer Z varints remained than point_count required.
	KindTruncatedZStream
	// KindTrailingBytes indicates bytes remained after decode in strict mode.
	KindTrailingBytes
)

func (k DecodeErrorKind) String() string {
	switch k {
	case KindBadMagic:
		return "BadMagic"
	case KindTruncated:
		return "Truncated"
	case KindVarintOverflow:
		return "VarintOverflow"
	case KindUnsupportedGeometryKind:
		return "UnsupportedGeometryKind"
	case KindEmptyGeometry:
		return "EmptyGeometry"
	case KindInvalidCoordinateStream:
		return "InvalidCoordinateStream"
	case KindTruncatedZStream:
		return "TruncatedZStream"
	case KindTrailingBytes:
		return "TrailingBytes"
	default:
		return "Unknown"
	}
}

// DecodeError is the single closed error type the decoder returns.
//
// Offset is the byte position in the blob where the failure was detected
// (for VarintOverflow, the varint's starting offset).
type DecodeError struct {
	kind   DecodeErrorKind
	Offset int
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("stgeometry: %s at offset %d", e.kind, e.Offset)
	}
	return fmt.Sprintf("stgeometry: %s at offset %d: %s", e.kind, e.Offset, e.Reason)
}

// Kind returns the error's category.
func (e *DecodeError) Kind() DecodeErrorKind {
	return e.kind
}

func newDecodeError(kind DecodeErrorKind, offset int, reason string) *DecodeError {
	return &DecodeError{kind: kind, Offset: offset, Reason: reason}
}

func errBadMagic(offset int, got []byte) *DecodeError {
	return newDecodeError(KindBadMagic, offset, fmt.Sprintf("got % x", got))
}

func errTruncated(offset, need int) *DecodeError {
	return newDecodeError(KindTruncated, offset, fmt.Sprintf("need %d more byte(s)", need))
}

func errVarintOverflow(offset int) *DecodeError {
	return newDecodeError(KindVarintOverflow, offset, "varint exceeds 10 bytes")
}

func errUnsupportedGeometryKind(offset int, shape int) *DecodeError {
	return newDecodeError(KindUnsupportedGeometryKind, offset, fmt.Sprintf("shape nibble %d not in {1,2,4,8}", shape))
}

func errEmptyGeometry(offset int) *DecodeError {
	return newDecodeError(KindEmptyGeometry, offset, "point_count is 0 for a shape requiring at least one point")
}

func errInvalidCoordinateStream(offset int) *DecodeError {
	return newDecodeError(KindInvalidCoordinateStream, offset, "buffer ended in the part-info skip loop before an absolute coordinate was found")
}

func errTruncatedZStream(offset, have, want int) *DecodeError {
	return newDecodeError(KindTruncatedZStream, offset, fmt.Sprintf("have %d z varint(s), want %d", have, want))
}

func errTrailingBytes(offset, remaining int) *DecodeError {
	return newDecodeError(KindTrailingBytes, offset, fmt.Sprintf("%d byte(s) remain after decode", remaining))
}
