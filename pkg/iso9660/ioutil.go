// Copyright © 2018 NVIDIA Corporation

package iso9660

import (
	"encoding/binary"
	"fmt"
	"io"
)

func putByte(s *Sector, f field, b byte) {
	f.span(s)[0] = b
}

func putString(s *Sector, f field, v string) {
	if len(v) != f.width {
		panic("never")
	}
	copy(f.span(s), v)
}

func putBothUint16(s *Sector, f field, v uint16) {
	b := f.span(s)
	binary.LittleEndian.PutUint16(b[0:2], v)
	binary.BigEndian.PutUint16(b[2:4], v)
}

func putBothUint32(s *Sector, f field, v uint32) {
	b := f.span(s)
	binary.LittleEndian.PutUint32(b[0:4], v)
	binary.BigEndian.PutUint32(b[4:8], v)
}

func fill(s *Sector, f field, c byte) {
	b := f.span(s)
	for i := range b {
		b[i] = c
	}
}

func readSector(r io.Reader, s *Sector) error {
	_, err := io.ReadFull(r, s[:])
	return err
}

func readExpectedByte(s *Sector, f field, expected byte) error {
	actual := f.span(s)[0]
	if actual != expected {
		return fmt.Errorf("%s: expected=%d, got=%d", f.name, expected, actual)
	}

	return nil
}

func readExpectedString(s *Sector, f field, expected string) error {
	actual := string(f.span(s))
	if actual != expected {
		return fmt.Errorf("%s: expected=%q, got=%q", f.name, expected, actual)
	}

	return nil
}

func readChars(s *Sector, f field, c charset) (string, error) {
	v, err := c.decode(string(f.span(s)))
	if err != nil {
		return "", fmt.Errorf("%s: %v", f.name, err)
	}

	return v, nil
}

func getBothUint16(s *Sector, f field) (uint16, error) {
	b := f.span(s)
	le := binary.LittleEndian.Uint16(b[0:2])
	be := binary.BigEndian.Uint16(b[2:4])
	if le != be {
		return 0, fmt.Errorf("%s: both-byte order mismatch: le=%d, be=%d", f.name, le, be)
	}

	return le, nil
}

func getBothUint32(s *Sector, f field) (uint32, error) {
	b := f.span(s)
	le := binary.LittleEndian.Uint32(b[0:4])
	be := binary.BigEndian.Uint32(b[4:8])
	if le != be {
		return 0, fmt.Errorf("%s: both-byte order mismatch: le=%d, be=%d", f.name, le, be)
	}

	return le, nil
}

// unpadded fails if any byte outside fields is non-zero.
func unpadded(s *Sector, fields []field) error {
	covered := coverage(fields)
	for i, b := range s {
		if !covered[i] && b != 0 {
			return fmt.Errorf("unexpected data at offset %d: 0x%02x", i, b)
		}
	}

	return nil
}
