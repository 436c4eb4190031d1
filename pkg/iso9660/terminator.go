// Copyright © 2018 NVIDIA Corporation

package iso9660

import (
	"io"
)

// Terminator is the Volume Descriptor Set Terminator.
type Terminator struct{}

func NewTerminator() *Terminator {
	return &Terminator{}
}

func (t *Terminator) Sector() *Sector {
	var s Sector
	putByte(&s, fieldTypeCode, TypeTerminator)
	putString(&s, fieldStandardIdentifier, CD001)
	putByte(&s, fieldVersion, 1)
	return &s
}

func (t *Terminator) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(t.Sector()[:])
	return int64(n), err
}

func DecodeTerminator(r io.Reader) error {
	var s Sector
	if err := readSector(r, &s); err != nil {
		return err
	}

	if err := readExpectedByte(&s, fieldTypeCode, TypeTerminator); err != nil {
		return err
	}

	if err := readExpectedString(&s, fieldStandardIdentifier, CD001); err != nil {
		return err
	}

	if err := readExpectedByte(&s, fieldVersion, 1); err != nil {
		return err
	}

	return unpadded(&s, headerFields)
}
