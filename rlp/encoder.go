package rlp

import (
	"bytes"
	"fmt"
	"io"
	"math/bits"
)

const (
	offsetString = 0x80
	offsetList   = 0xc0

	// Lengths below shortLimit are folded into the prefix byte, longer ones follow it as big-endian bytes.
	shortLimit = 56
)

// Encode returns the RLP encoding of item.
func Encode(item Item) ([]byte, error) {
	m := &measurer{}
	size, err := m.size(item)
	if err != nil {
		return nil, err
	}
	buffer := bytes.NewBuffer(make([]byte, 0, size))
	e := NewEncoderFor(buffer)
	e.write(item, m.lists)
	if e.err != nil {
		return nil, e.err
	}
	return buffer.Bytes(), nil
}

// Size returns the length in bytes of the encoding of item, without encoding it.
func Size(item Item) (uint64, error) {
	return (&measurer{}).size(item)
}

// Encoder writes RLP encodings to an io.Writer. The first error encountered is retained, subsequent writes are
// no-ops, and Err reports it.
type Encoder struct {
	target io.Writer
	err    error

	lists []uint64 // payload sizes of the lists of the item being written, in pre-order
	next  int
}

func NewEncoderFor(target io.Writer) *Encoder {
	return &Encoder{target: target}
}

// Write appends the encoding of item to the target. Items are written without any framing; the encoding is
// self-delimiting.
func (e *Encoder) Write(item Item) {
	if e.err != nil {
		return
	}
	m := &measurer{}
	if _, err := m.size(item); err != nil {
		e.err = err
		return
	}
	e.write(item, m.lists)
}

// Err returns the first error encountered while writing, if any.
func (e *Encoder) Err() error {
	return e.err
}

func (e *Encoder) write(item Item, lists []uint64) {
	e.lists, e.next = lists, 0
	e.writeItem(item)
	e.lists = nil
}

func (e *Encoder) writeItem(item Item) {
	switch v := item.(type) {
	case String:
		if len(v) == 1 && v[0] < offsetString {
			e.writeFull(v)
			return
		}
		e.writeHeader(offsetString, uint64(len(v)))
		e.writeFull(v)

	case List:
		payload := e.lists[e.next]
		e.next++
		e.writeHeader(offsetList, payload)
		for _, child := range v {
			e.writeItem(child)
		}
	}
}

// writeHeader emits the prefix for a payload of n bytes: offset + n for short payloads, otherwise
// offset + 55 + len(BE(n)) followed by the minimal big-endian bytes BE(n).
func (e *Encoder) writeHeader(offset byte, n uint64) {
	var buf [9]byte // 1 + 8 byte header is the maximum

	if n < shortLimit {
		buf[0] = offset + byte(n)
		e.writeFull(buf[:1])
		return
	}
	l := putLength(buf[1:], n)
	buf[0] = offset + shortLimit - 1 + byte(l)
	e.writeFull(buf[:1+l])
}

func (e *Encoder) writeFull(p []byte) {
	for len(p) > 0 && e.err == nil {
		n, err := e.target.Write(p)
		if err != nil && n == 0 {
			e.err = err
			return
		}
		if n == 0 {
			e.err = io.ErrShortWrite
			return
		}
		p = p[n:]
	}
}

// putLength writes n into buf as big-endian bytes without leading zeros and returns the number of bytes written,
// which is 0 for n = 0.
func putLength(buf []byte, n uint64) int {
	var tmp [8]byte
	i := len(tmp)
	for ; n > 0; n /= 256 {
		i--
		tmp[i] = byte(n % 256)
	}
	return copy(buf, tmp[i:])
}

// headerSize returns the length of the prefix for a payload of n bytes.
func headerSize(n uint64) uint64 {
	if n < shortLimit {
		return 1
	}
	return 1 + uint64((bits.Len64(n)+7)/8)
}

// measurer computes encoded sizes, recording the payload size of every list it visits in pre-order so the encoder
// can emit each list header before its children.
type measurer struct {
	lists []uint64
}

func (m *measurer) size(item Item) (uint64, error) {
	switch v := item.(type) {
	case String:
		if len(v) == 1 && v[0] < offsetString {
			return 1, nil
		}
		return withHeader(uint64(len(v)))

	case List:
		index := len(m.lists)
		m.lists = append(m.lists, 0)

		var payload uint64
		for _, child := range v {
			n, err := m.size(child)
			if err != nil {
				return 0, err
			}
			if payload, err = add(payload, n); err != nil {
				return 0, err
			}
		}
		m.lists[index] = payload
		return withHeader(payload)

	default:
		return 0, fmt.Errorf("%w: got %T", ErrInvalidInput, item)
	}
}

func withHeader(payload uint64) (uint64, error) {
	return add(headerSize(payload), payload)
}

// add returns a + b. A sum that overflows uint64 is a length of at least 256^8, which the length-of-length byte
// cannot describe.
func add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w: length exceeds 256^8 - 1", ErrInputTooLarge)
	}
	return sum, nil
}
