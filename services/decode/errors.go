package decode

import "fmt"

// Decode errors all carry the byte offset of the offending chunk plus the
// expected-vs-actual sizes involved, so corrupt instrument output can be
// diagnosed from the log alone.

// TruncatedLengthPrefixError reports a buffer that ends inside a chunk's
// 2-byte length prefix.
type TruncatedLengthPrefixError struct {
	Offset    int // position of the truncated prefix
	Remaining int // bytes left in the buffer, < 2
}

func (e *TruncatedLengthPrefixError) Error() string {
	return fmt.Sprintf("truncated length prefix at offset %d: need 2 bytes, have %d",
		e.Offset, e.Remaining)
}

// MalformedChunkError reports a length prefix inconsistent with the buffer:
// shorter than the prefix itself, or running past the end of the file.
// Either means the file is corrupt or the walk has desynchronized.
type MalformedChunkError struct {
	Offset    int // position of the chunk
	Length    int // declared chunk length
	Remaining int // bytes available from Offset
}

func (e *MalformedChunkError) Error() string {
	return fmt.Sprintf("malformed chunk at offset %d: declared length %d, %d bytes remain",
		e.Offset, e.Length, e.Remaining)
}

// InsufficientBytesError reports a chunk too short for its declared
// contents, either the fixed header or the header plus the sample body.
type InsufficientBytesError struct {
	Offset   int // position of the chunk
	Expected int // bytes the declared layout requires
	Actual   int // bytes the chunk actually has
}

func (e *InsufficientBytesError) Error() string {
	return fmt.Sprintf("short chunk at offset %d: need %d bytes, have %d",
		e.Offset, e.Expected, e.Actual)
}

// UnknownEnumValueError reports a radiometer or optics code the decoder
// does not recognize. The raw code is preserved so the caller can decide
// whether to reject the record or degrade gracefully.
type UnknownEnumValueError struct {
	Offset int    // position of the chunk
	Field  string // "radiometer" or "optics"
	Code   uint16 // raw wire code
}

func (e *UnknownEnumValueError) Error() string {
	return fmt.Sprintf("chunk at offset %d: unknown %s code %d", e.Offset, e.Field, e.Code)
}
