package decode

import "encoding/binary"

// Chunk is one length-prefixed span of a sequence file. Data includes the
// 2-byte length prefix and aliases the source buffer; Offset is the span's
// position within it.
type Chunk struct {
	Offset int
	Data   []byte
}

// Splitter walks a sequence buffer chunk by chunk. Each chunk's first two
// bytes are an unsigned little-endian length that counts the length field
// itself, so the walk is self-delimiting. The splitter holds only a cursor,
// never copies, and can be rewound with Reset.
type Splitter struct {
	buf    []byte
	cursor int
}

func NewSplitter(buf []byte) *Splitter {
	return &Splitter{buf: buf}
}

// Next returns the chunk at the cursor and advances past it. A nil chunk
// with a nil error means the buffer is cleanly exhausted. A non-nil error
// means the walk desynchronized; no further chunks can be trusted.
func (s *Splitter) Next() (*Chunk, error) {
	if s.cursor == len(s.buf) {
		return nil, nil
	}
	remaining := len(s.buf) - s.cursor
	if remaining < 2 {
		return nil, &TruncatedLengthPrefixError{Offset: s.cursor, Remaining: remaining}
	}
	n := int(binary.LittleEndian.Uint16(s.buf[s.cursor:]))
	if n < 2 || n > remaining {
		return nil, &MalformedChunkError{Offset: s.cursor, Length: n, Remaining: remaining}
	}
	c := &Chunk{Offset: s.cursor, Data: s.buf[s.cursor : s.cursor+n]}
	s.cursor += n
	return c, nil
}

// Reset rewinds the splitter to the start of the buffer.
func (s *Splitter) Reset() {
	s.cursor = 0
}

// Split walks the whole buffer eagerly. On error the chunks emitted before
// the bad span are discarded; a corrupt file yields no chunks at all.
func Split(buf []byte) ([]Chunk, error) {
	s := NewSplitter(buf)
	var chunks []Chunk
	for {
		c, err := s.Next()
		if err != nil {
			return nil, err
		}
		if c == nil {
			return chunks, nil
		}
		chunks = append(chunks, *c)
	}
}
