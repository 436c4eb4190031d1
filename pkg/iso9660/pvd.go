// Copyright © 2019 NVIDIA Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package iso9660

import (
	"fmt"
	"io"
)

const (
	CD001 = "CD001"

	TypePrimary    byte = 1
	TypeTerminator byte = 255

	DefaultSystemIdentifier = "LINUX"
	DefaultVolumeIdentifier = "SYNTHETIC_TEST_ISO"

	// The application use area is left blank (spaces) for checksum
	// implanting tools to fill in.
	ApplicationUseOffset = 883
	ApplicationUseSize   = 512
)

// PrimaryVolumeDescriptor holds the fields of a synthetic primary volume
// descriptor. Fields not listed here are always zero on disc.
type PrimaryVolumeDescriptor struct {
	SystemIdentifier     string
	VolumeIdentifier     string
	VolumeSpaceSize      uint32
	VolumeSetSize        uint16
	VolumeSequenceNumber uint16
	LogicalBlockSize     uint16

	// Populated by DecodePrimaryVolumeDescriptor.
	ApplicationUse []byte `json:"-"`
}

// NewPrimaryVolumeDescriptor returns a descriptor for a single-volume set of
// sectorCount logical blocks.
func NewPrimaryVolumeDescriptor(sectorCount uint32) *PrimaryVolumeDescriptor {
	return &PrimaryVolumeDescriptor{
		SystemIdentifier:     DefaultSystemIdentifier,
		VolumeIdentifier:     DefaultVolumeIdentifier,
		VolumeSpaceSize:      sectorCount,
		VolumeSetSize:        1,
		VolumeSequenceNumber: 1,
		LogicalBlockSize:     LogicalBlockSize,
	}
}

// Sector renders the descriptor. The application use area is always blank.
func (pvd *PrimaryVolumeDescriptor) Sector() *Sector {
	var s Sector
	putByte(&s, fieldTypeCode, TypePrimary)
	putString(&s, fieldStandardIdentifier, CD001)
	putByte(&s, fieldVersion, 1)
	putString(&s, fieldSystemIdentifier, StrA(pvd.SystemIdentifier, fieldSystemIdentifier.width))
	putString(&s, fieldVolumeIdentifier, StrD(pvd.VolumeIdentifier, fieldVolumeIdentifier.width))
	putBothUint32(&s, fieldVolumeSpaceSize, pvd.VolumeSpaceSize)
	putBothUint16(&s, fieldVolumeSetSize, pvd.VolumeSetSize)
	putBothUint16(&s, fieldVolumeSequenceNumber, pvd.VolumeSequenceNumber)
	putBothUint16(&s, fieldLogicalBlockSize, LogicalBlockSize)
	fill(&s, fieldApplicationUse, ' ')
	return &s
}

func (pvd *PrimaryVolumeDescriptor) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(pvd.Sector()[:])
	return int64(n), err
}

// ApplicationUseBlank reports whether the decoded application use area
// still holds nothing but spaces.
func (pvd *PrimaryVolumeDescriptor) ApplicationUseBlank() bool {
	if len(pvd.ApplicationUse) != ApplicationUseSize {
		return false
	}
	for _, b := range pvd.ApplicationUse {
		if b != ' ' {
			return false
		}
	}
	return true
}

func DecodePrimaryVolumeDescriptor(r io.Reader, pvd *PrimaryVolumeDescriptor) (err error) {
	var s Sector
	if err = readSector(r, &s); err != nil {
		return
	}

	if err = readExpectedByte(&s, fieldTypeCode, TypePrimary); err != nil {
		return
	}

	if err = readExpectedString(&s, fieldStandardIdentifier, CD001); err != nil {
		return
	}

	if err = readExpectedByte(&s, fieldVersion, 1); err != nil {
		return
	}

	if pvd.SystemIdentifier, err = readChars(&s, fieldSystemIdentifier, aCharacters); err != nil {
		return
	}

	if pvd.VolumeIdentifier, err = readChars(&s, fieldVolumeIdentifier, dCharacters); err != nil {
		return
	}

	if pvd.VolumeSpaceSize, err = getBothUint32(&s, fieldVolumeSpaceSize); err != nil {
		return
	}

	if pvd.VolumeSetSize, err = getBothUint16(&s, fieldVolumeSetSize); err != nil {
		return
	}

	if pvd.VolumeSequenceNumber, err = getBothUint16(&s, fieldVolumeSequenceNumber); err != nil {
		return
	}

	if pvd.LogicalBlockSize, err = getBothUint16(&s, fieldLogicalBlockSize); err != nil {
		return
	}
	if pvd.LogicalBlockSize != LogicalBlockSize {
		err = fmt.Errorf("Unsupported Logical Block Size: %d", pvd.LogicalBlockSize)
		return
	}

	pvd.ApplicationUse = append([]byte(nil), fieldApplicationUse.span(&s)...)

	err = unpadded(&s, pvdFields)
	return
}
