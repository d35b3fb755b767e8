// Package suitx encodes programmable transactions in BCS, the canonical
// binary format the Sui ledger signs and executes.
package suitx

import (
	"bytes"
	"encoding/binary"
)

type Encoder struct {
	buf bytes.Buffer
}

func (e *Encoder) U8(value uint8) {
	e.buf.WriteByte(value)
}

func (e *Encoder) Bool(value bool) {
	if value {
		e.U8(1)
		return
	}
	e.U8(0)
}

func (e *Encoder) U16(value uint16) {
	var out [2]byte
	binary.LittleEndian.PutUint16(out[:], value)
	e.buf.Write(out[:])
}

func (e *Encoder) U64(value uint64) {
	var out [8]byte
	binary.LittleEndian.PutUint64(out[:], value)
	e.buf.Write(out[:])
}

// ULEB128 writes sequence lengths and enum variant indices.
func (e *Encoder) ULEB128(value uint64) {
	for {
		b := byte(value & 0x7f)
		value >>= 7
		if value != 0 {
			e.buf.WriteByte(b | 0x80)
			continue
		}
		e.buf.WriteByte(b)
		return
	}
}

func (e *Encoder) Variant(index uint64) {
	e.ULEB128(index)
}

func (e *Encoder) Length(n int) {
	e.ULEB128(uint64(n))
}

func (e *Encoder) FixedBytes(value []byte) {
	e.buf.Write(value)
}

func (e *Encoder) Bytes(value []byte) {
	e.Length(len(value))
	e.buf.Write(value)
}

func (e *Encoder) String(value string) {
	e.Bytes([]byte(value))
}

func (e *Encoder) Address(value Address) {
	e.buf.Write(value[:])
}

func (e *Encoder) Result() []byte {
	return append([]byte(nil), e.buf.Bytes()...)
}

func PureU8(value uint8) []byte {
	return []byte{value}
}

func PureU64(value uint64) []byte {
	encoder := Encoder{}
	encoder.U64(value)
	return encoder.Result()
}

func PureAddress(value Address) []byte {
	return append([]byte(nil), value[:]...)
}
