package iso9660_test

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pappasjfed/isomd5sum/pkg/iso9660"
)

func TestPVD(t *testing.T) {
	expected := iso9660.NewPrimaryVolumeDescriptor(256)

	buf := bytes.NewBuffer(nil)
	n, err := expected.WriteTo(buf)
	assert.Nil(t, err)
	assert.EqualValues(t, iso9660.LogicalBlockSize, n)

	var actual iso9660.PrimaryVolumeDescriptor
	err = iso9660.DecodePrimaryVolumeDescriptor(buf, &actual)
	assert.Nil(t, err)

	assert.Equal(t, "LINUX", actual.SystemIdentifier)
	assert.Equal(t, "SYNTHETIC_TEST_ISO", actual.VolumeIdentifier)
	assert.EqualValues(t, 256, actual.VolumeSpaceSize)
	assert.EqualValues(t, 1, actual.VolumeSetSize)
	assert.EqualValues(t, 1, actual.VolumeSequenceNumber)
	assert.EqualValues(t, 2048, actual.LogicalBlockSize)
	assert.True(t, actual.ApplicationUseBlank())
}

func TestPVDLayout(t *testing.T) {
	s := iso9660.NewPrimaryVolumeDescriptor(0x01020304).Sector()

	assert.EqualValues(t, 1, s[0])
	assert.Equal(t, "CD001", string(s[1:6]))
	assert.EqualValues(t, 1, s[6])
	assert.EqualValues(t, 0, s[7])
	assert.Equal(t, "LINUX"+strings.Repeat(" ", 27), string(s[8:40]))
	assert.Equal(t, "SYNTHETIC_TEST_ISO"+strings.Repeat(" ", 14), string(s[40:72]))

	assert.Equal(t, []byte{4, 3, 2, 1}, s[80:84])
	assert.Equal(t, []byte{1, 2, 3, 4}, s[84:88])
	assert.EqualValues(t, 0x01020304, binary.LittleEndian.Uint32(s[80:84]))
	assert.EqualValues(t, 0x01020304, binary.BigEndian.Uint32(s[84:88]))

	assert.Equal(t, []byte{1, 0, 0, 1}, s[120:124])
	assert.Equal(t, []byte{1, 0, 0, 1}, s[124:128])
	assert.Equal(t, []byte{0x00, 0x08, 0x08, 0x00}, s[128:132])

	assert.Equal(t, bytes.Repeat([]byte{' '}, 512), s[883:1395])

	// everything else is zero
	for _, r := range [][2]int{{72, 80}, {88, 120}, {132, 883}, {1395, 2048}} {
		assert.Equal(t, make([]byte, r[1]-r[0]), s[r[0]:r[1]], "range %d-%d", r[0], r[1])
	}
}

func TestPVDDeterministic(t *testing.T) {
	a := iso9660.NewPrimaryVolumeDescriptor(18).Sector()
	b := iso9660.NewPrimaryVolumeDescriptor(18).Sector()
	assert.Equal(t, a, b)
}

func TestPVDIdentifiers(t *testing.T) {
	pvd := iso9660.NewPrimaryVolumeDescriptor(18)
	pvd.SystemIdentifier = "freebsd 12"
	pvd.VolumeIdentifier = "my volume-1"
	s := pvd.Sector()

	assert.Equal(t, "FREEBSD 12"+strings.Repeat(" ", 22), string(s[8:40]))
	assert.Equal(t, "MY_VOLUME_1"+strings.Repeat(" ", 21), string(s[40:72]))

	pvd.VolumeIdentifier = strings.Repeat("X", 40)
	s = pvd.Sector()
	assert.Equal(t, strings.Repeat("X", 32), string(s[40:72]))
	assert.EqualValues(t, 0, s[72])
}

func TestDecodePVDRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *iso9660.Sector)
		errMsg string
	}{
		{"type code", func(s *iso9660.Sector) { s[0] = 2 }, "Type Code"},
		{"standard identifier", func(s *iso9660.Sector) { s[3] = 'X' }, "Standard Identifier"},
		{"version", func(s *iso9660.Sector) { s[6] = 2 }, "Version"},
		{"space size mismatch", func(s *iso9660.Sector) { s[87] = 9 }, "Volume Space Size"},
		{"block size", func(s *iso9660.Sector) {
			binary.LittleEndian.PutUint16(s[128:130], 512)
			binary.BigEndian.PutUint16(s[130:132], 512)
		}, "Logical Block Size"},
		{"volume identifier", func(s *iso9660.Sector) { s[40] = 'a' }, "Volume Identifier: invalid d-characters"},
		{"stray data", func(s *iso9660.Sector) { s[2000] = 1 }, "offset 2000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := iso9660.NewPrimaryVolumeDescriptor(100).Sector()
			tt.mutate(s)

			var pvd iso9660.PrimaryVolumeDescriptor
			err := iso9660.DecodePrimaryVolumeDescriptor(bytes.NewReader(s[:]), &pvd)
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

func TestDecodePVDShortRead(t *testing.T) {
	var pvd iso9660.PrimaryVolumeDescriptor
	err := iso9660.DecodePrimaryVolumeDescriptor(bytes.NewReader(make([]byte, 100)), &pvd)
	assert.Error(t, err)
}

func TestApplicationUseBlank(t *testing.T) {
	s := iso9660.NewPrimaryVolumeDescriptor(100).Sector()
	copy(s[iso9660.ApplicationUseOffset:], "ISO MD5SUM = ")

	var pvd iso9660.PrimaryVolumeDescriptor
	err := iso9660.DecodePrimaryVolumeDescriptor(bytes.NewReader(s[:]), &pvd)
	assert.Nil(t, err)
	assert.False(t, pvd.ApplicationUseBlank())
	assert.Equal(t, "ISO MD5SUM = ", string(pvd.ApplicationUse[:13]))
}
