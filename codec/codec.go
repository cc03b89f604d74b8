// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package codec implements the binary primitives of the Ontology wire
// format: little-endian fixed-width integers, variable-length integers and
// byte strings, reversed-hex helpers and Base58Check.
//
// Variable-length integers use the same layout as the Bitcoin CompactSize
// encoding:
//
//	value < 0xfd         1 byte
//	value <= 0xffff      0xfd followed by uint16 little-endian
//	value <= 0xffffffff  0xfe followed by uint32 little-endian
//	otherwise            0xff followed by uint64 little-endian
//
// Readers reject encodings that are longer than necessary.
package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/btcsuite/btcd/wire"
	"github.com/ontio/ontcore/coreerr"
)

// MaxVarBytes is the largest variable-length byte string a Reader accepts
// unless the caller supplies a tighter bound.
const MaxVarBytes = wire.MaxMessagePayload

// pver is passed to the wire helpers, whose varint layout does not depend
// on the protocol version.
const pver = 0

// VarUintSize returns the number of bytes val occupies once encoded.
func VarUintSize(val uint64) int {
	return wire.VarIntSerializeSize(val)
}

// VarUintBytes returns the variable-length encoding of val.
func VarUintBytes(val uint64) []byte {
	var buf bytes.Buffer
	buf.Grow(VarUintSize(val))
	// Writes to a bytes.Buffer never fail.
	_ = wire.WriteVarInt(&buf, pver, val)
	return buf.Bytes()
}

// Writer accumulates an encoded byte sequence.  The zero value is ready to
// use.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return new(Writer)
}

// Bytes returns the encoded bytes.  The slice aliases the Writer's buffer
// until the next write.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return w.buf.Len() }

// WriteUint8 appends a single byte.
func (w *Writer) WriteUint8(v uint8) {
	w.buf.WriteByte(v)
}

// WriteBool appends 1 for true and 0 for false.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.buf.WriteByte(1)
		return
	}
	w.buf.WriteByte(0)
}

// WriteUint16 appends v in little-endian order.
func (w *Writer) WriteUint16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.buf.Write(b[:])
}

// WriteUint32 appends v in little-endian order.
func (w *Writer) WriteUint32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

// WriteUint64 appends v in little-endian order.
func (w *Writer) WriteUint64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// WriteBytes appends b without a length prefix.
func (w *Writer) WriteBytes(b []byte) {
	w.buf.Write(b)
}

// WriteVarUint appends the variable-length encoding of v.
func (w *Writer) WriteVarUint(v uint64) {
	_ = wire.WriteVarInt(&w.buf, pver, v)
}

// WriteVarBytes appends a length-prefixed byte string.
func (w *Writer) WriteVarBytes(b []byte) {
	_ = wire.WriteVarBytes(&w.buf, pver, b)
}

// WriteVarString appends a length-prefixed UTF-8 string.
func (w *Writer) WriteVarString(s string) {
	_ = wire.WriteVarString(&w.buf, pver, s)
}

// Reader decodes values from an encoded byte sequence.  Every short read
// or malformed value is reported as a coreerr.ErrFormat error.
type Reader struct {
	r    *bytes.Reader
	size int
}

// NewReader returns a Reader over b.  b must not be modified while the
// Reader is in use.
func NewReader(b []byte) *Reader {
	return &Reader{r: bytes.NewReader(b), size: len(b)}
}

// Pos returns the number of bytes consumed so far.
func (r *Reader) Pos() int { return r.size - r.r.Len() }

// Len returns the number of unread bytes.
func (r *Reader) Len() int { return r.r.Len() }

func formatErr(what string, err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return coreerr.New(coreerr.ErrFormat, "failed to read "+what, err)
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return 0, formatErr("uint8", err)
	}
	return b, nil
}

// ReadBool reads a byte that must be either 0 or 1.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.ReadUint8()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, coreerr.Newf(coreerr.ErrFormat, "invalid bool byte %#x", b)
}

// ReadUint16 reads a little-endian uint16.
func (r *Reader) ReadUint16() (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r.r, b[:]); err != nil {
		return 0, formatErr("uint16", err)
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

// ReadUint32 reads a little-endian uint32.
func (r *Reader) ReadUint32() (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r.r, b[:]); err != nil {
		return 0, formatErr("uint32", err)
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// ReadUint64 reads a little-endian uint64.
func (r *Reader) ReadUint64() (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r.r, b[:]); err != nil {
		return 0, formatErr("uint64", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// ReadBytes reads exactly n bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > r.r.Len() {
		return nil, formatErr("bytes", io.ErrUnexpectedEOF)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r.r, b); err != nil {
		return nil, formatErr("bytes", err)
	}
	return b, nil
}

// ReadVarUint reads a variable-length integer.
func (r *Reader) ReadVarUint() (uint64, error) {
	v, err := wire.ReadVarInt(r.r, pver)
	if err != nil {
		return 0, formatErr("varint", err)
	}
	return v, nil
}

// ReadVarUintMax reads a variable-length integer and fails if it exceeds
// max.
func (r *Reader) ReadVarUintMax(max uint64) (uint64, error) {
	v, err := r.ReadVarUint()
	if err != nil {
		return 0, err
	}
	if v > max {
		return 0, coreerr.Newf(coreerr.ErrFormat,
			"varint %d exceeds maximum %d", v, max)
	}
	return v, nil
}

// ReadVarBytes reads a length-prefixed byte string of at most MaxVarBytes
// bytes.
func (r *Reader) ReadVarBytes() ([]byte, error) {
	return r.ReadVarBytesMax(MaxVarBytes)
}

// ReadVarBytesMax reads a length-prefixed byte string of at most max
// bytes.
func (r *Reader) ReadVarBytesMax(max uint32) ([]byte, error) {
	b, err := wire.ReadVarBytes(r.r, pver, max, "varbytes")
	if err != nil {
		return nil, formatErr("varbytes", err)
	}
	return b, nil
}

// ReadVarString reads a length-prefixed UTF-8 string.
func (r *Reader) ReadVarString() (string, error) {
	b, err := r.ReadVarBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadCount reads a variable-length element count that must not exceed
// max.
func (r *Reader) ReadCount(max int) (int, error) {
	v, err := r.ReadVarUintMax(uint64(max))
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
