package decode

import (
	"encoding/binary"
	"errors"
	"testing"
)

// rawChunk builds a chunk of n total bytes whose prefix declares n.
func rawChunk(n int) []byte {
	b := make([]byte, n)
	binary.LittleEndian.PutUint16(b, uint16(n))
	for i := 2; i < n; i++ {
		b[i] = byte(i)
	}
	return b
}

func TestSplitCoversBuffer(t *testing.T) {
	buf := append(rawChunk(40), rawChunk(44)...)

	chunks, err := Split(buf)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(chunks) != 2 {
		t.Fatalf("want 2 chunks, got %d", len(chunks))
	}
	if chunks[0].Offset != 0 || chunks[1].Offset != 40 {
		t.Fatalf("bad offsets: %d, %d", chunks[0].Offset, chunks[1].Offset)
	}

	// every valid file is covered exactly by its chunks
	total := 0
	for _, c := range chunks {
		total += len(c.Data)
	}
	if total != len(buf) {
		t.Fatalf("chunks cover %d of %d bytes", total, len(buf))
	}
}

func TestSplitterIsLazyAndRestartable(t *testing.T) {
	buf := append(rawChunk(4), rawChunk(6)...)
	s := NewSplitter(buf)

	first, err := s.Next()
	if err != nil || first == nil || first.Offset != 0 {
		t.Fatalf("first chunk: %+v, %v", first, err)
	}
	if _, err := s.Next(); err != nil {
		t.Fatalf("second chunk: %v", err)
	}
	if c, err := s.Next(); c != nil || err != nil {
		t.Fatalf("expected clean end, got %+v, %v", c, err)
	}

	s.Reset()
	again, err := s.Next()
	if err != nil || again == nil || again.Offset != 0 {
		t.Fatalf("after reset: %+v, %v", again, err)
	}
}

func TestSplitEmptyBuffer(t *testing.T) {
	chunks, err := Split(nil)
	if err != nil || len(chunks) != 0 {
		t.Fatalf("empty buffer: %d chunks, %v", len(chunks), err)
	}
}

func TestSplitTruncatedPrefix(t *testing.T) {
	cases := []struct {
		name       string
		buf        []byte
		wantOffset int
	}{
		{"mid-prefix at start", []byte{0x07}, 0},
		{"stray byte after valid chunk", append(rawChunk(4), 0xff), 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Split(tc.buf)
			var trunc *TruncatedLengthPrefixError
			if !errors.As(err, &trunc) {
				t.Fatalf("want TruncatedLengthPrefixError, got %v", err)
			}
			if trunc.Offset != tc.wantOffset || trunc.Remaining != 1 {
				t.Fatalf("bad error detail: %+v", trunc)
			}
		})
	}
}

func TestSplitMalformedChunk(t *testing.T) {
	cases := []struct {
		name string
		buf  []byte
	}{
		{"length one", []byte{0x01, 0x00, 0xaa, 0xbb}},
		{"length zero", []byte{0x00, 0x00}},
		{"overruns buffer", []byte{0x0a, 0x00, 1, 2, 3, 4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			chunks, err := Split(tc.buf)
			var mal *MalformedChunkError
			if !errors.As(err, &mal) {
				t.Fatalf("want MalformedChunkError, got %v", err)
			}
			if chunks != nil {
				t.Fatalf("corrupt buffer must yield no chunks, got %d", len(chunks))
			}
		})
	}
}
