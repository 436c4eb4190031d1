// Copyright © 2018 NVIDIA Corporation

package iso9660

import (
	"math"

	"github.com/pkg/errors"
)

const (
	LogicalBlockSize = 2048

	// Sectors 0x00-0x0F are reserved for the system area.
	SystemAreaSectors = 16

	PrimaryVolumeDescriptorSector = SystemAreaSectors
	TerminatorSector              = PrimaryVolumeDescriptorSector + 1

	// Sectors occupied by the system area and the descriptor set.
	HeaderSectors = TerminatorSector + 1
	HeaderSize    = HeaderSectors * LogicalBlockSize
)

// ErrVolumeTooLarge is returned when a volume would need more sectors than
// the 32-bit volume space size field can express.
var ErrVolumeTooLarge = errors.New("volume exceeds 2^32-1 logical blocks")

// Sector is one logical block of a volume.
type Sector [LogicalBlockSize]byte

// SectorCountFor returns the number of sectors needed to hold bytes, rounding up.
func SectorCountFor(bytes uint64) (uint32, error) {
	sectors := bytes / LogicalBlockSize
	if bytes%LogicalBlockSize != 0 {
		sectors++
	}
	if sectors > math.MaxUint32 {
		return 0, errors.Wrapf(ErrVolumeTooLarge, "%d bytes", bytes)
	}
	return uint32(sectors), nil
}

// SectorsToBytes calculates the number of bytes occupied by sectors.
func SectorsToBytes(sectors uint32) uint64 {
	return uint64(sectors) * LogicalBlockSize
}
