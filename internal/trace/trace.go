// Package trace records a step-by-step history of a running CPU core as
// a compressed, line-delimited JSON stream, with a 64-bit state hash per
// entry so two traces can be compared for divergence without diffing
// full snapshots.
package trace

import (
	"encoding/binary"
	"encoding/json"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/cespare/xxhash"

	"github.com/fennelabs/sm83/internal/cpu"
)

// Entry is one recorded step: the opcode that was about to execute, how
// many M-cycles it took, the register snapshot after it ran, and a hash
// of that snapshot.
type Entry struct {
	Step   uint64       `json:"step"`
	PC     uint16       `json:"pc"`
	Opcode uint8        `json:"opcode"`
	Cycles uint32       `json:"cycles"`
	State  cpu.Snapshot `json:"state"`
	Hash   uint64       `json:"hash"`
}

// Hash folds a Snapshot into a 64-bit checksum. Two entries with
// different Hash values are guaranteed to have different state; equal
// hashes are very likely, not certain, to mean equal state.
func Hash(s cpu.Snapshot) uint64 {
	var buf [18]byte
	buf[0] = s.A
	buf[1] = s.F
	buf[2] = s.B
	buf[3] = s.C
	buf[4] = s.D
	buf[5] = s.E
	buf[6] = s.H
	buf[7] = s.L
	binary.LittleEndian.PutUint16(buf[8:], s.SP)
	binary.LittleEndian.PutUint16(buf[10:], s.PC)
	var flags uint8
	if s.IME {
		flags |= 0x01
	}
	if s.Halted {
		flags |= 0x02
	}
	if s.Stopped {
		flags |= 0x04
	}
	if s.HaltBug {
		flags |= 0x08
	}
	buf[12] = flags
	buf[13] = s.ImePending
	return xxhash.Sum64(buf[:14])
}

// Writer appends Entry records as brotli-compressed JSON lines to an
// underlying io.Writer (typically a file). Callers must Close it to
// flush the compressor.
type Writer struct {
	comp *brotli.Writer
	enc  *json.Encoder
	step uint64
}

// NewWriter wraps w with a brotli compressor at the default quality
// level and a JSON-lines encoder over the compressed stream.
func NewWriter(w io.Writer) *Writer {
	comp := brotli.NewWriter(w)
	return &Writer{comp: comp, enc: json.NewEncoder(comp)}
}

// Record appends one entry, computing its hash and stamping it with the
// next sequential step number.
func (w *Writer) Record(pc uint16, opcode uint8, cycles uint32, state cpu.Snapshot) error {
	entry := Entry{
		Step:   w.step,
		PC:     pc,
		Opcode: opcode,
		Cycles: cycles,
		State:  state,
		Hash:   Hash(state),
	}
	w.step++
	return w.enc.Encode(entry)
}

// Close flushes and closes the brotli compressor. It does not close the
// underlying io.Writer.
func (w *Writer) Close() error {
	return w.comp.Close()
}

// Reader decodes a trace previously written by Writer.
type Reader struct {
	decomp io.Reader
	dec    *json.Decoder
}

// NewReader wraps r with a brotli decompressor and a JSON-lines decoder.
func NewReader(r io.Reader) *Reader {
	decomp := brotli.NewReader(r)
	return &Reader{decomp: decomp, dec: json.NewDecoder(decomp)}
}

// Next decodes the following entry, returning io.EOF once the stream is
// exhausted.
func (r *Reader) Next() (Entry, error) {
	var e Entry
	err := r.dec.Decode(&e)
	return e, err
}

// Diverged reports the first step at which two traces disagree on Hash,
// or -1 if a and b agree (or one ends early) through the shorter length.
func Diverged(a, b []Entry) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i].Hash != b[i].Hash {
			return i
		}
	}
	return -1
}
