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

type encoding int

const (
	encByte encoding = iota
	encRaw
	encStrA
	encStrD
	encBothUint16
	encBothUint32
	encFill
)

// field locates one volume descriptor field within its sector (ECMA-119 8.4).
type field struct {
	name   string
	offset int
	width  int
	enc    encoding
}

var (
	fieldTypeCode             = field{"Type Code", 0, 1, encByte}
	fieldStandardIdentifier   = field{"Standard Identifier", 1, 5, encRaw}
	fieldVersion              = field{"Version", 6, 1, encByte}
	fieldSystemIdentifier     = field{"System Identifier", 8, 32, encStrA}
	fieldVolumeIdentifier     = field{"Volume Identifier", 40, 32, encStrD}
	fieldVolumeSpaceSize      = field{"Volume Space Size", 80, 8, encBothUint32}
	fieldVolumeSetSize        = field{"Volume Set Size", 120, 4, encBothUint16}
	fieldVolumeSequenceNumber = field{"Volume Sequence Number", 124, 4, encBothUint16}
	fieldLogicalBlockSize     = field{"Logical Block Size", 128, 4, encBothUint16}
	fieldApplicationUse       = field{"Application Use", ApplicationUseOffset, ApplicationUseSize, encFill}
)

// Every descriptor starts with the same header.
var headerFields = []field{
	fieldTypeCode,
	fieldStandardIdentifier,
	fieldVersion,
}

// pvdFields is the complete set of fields written into a primary volume
// descriptor. Bytes not covered here stay zero.
var pvdFields = []field{
	fieldTypeCode,
	fieldStandardIdentifier,
	fieldVersion,
	fieldSystemIdentifier,
	fieldVolumeIdentifier,
	fieldVolumeSpaceSize,
	fieldVolumeSetSize,
	fieldVolumeSequenceNumber,
	fieldLogicalBlockSize,
	fieldApplicationUse,
}

func (f field) span(s *Sector) []byte {
	return s[f.offset : f.offset+f.width]
}

func (f field) end() int {
	return f.offset + f.width
}

// coverage marks every byte owned by one of fields.
func coverage(fields []field) (covered [LogicalBlockSize]bool) {
	for _, f := range fields {
		for i := f.offset; i < f.end(); i++ {
			covered[i] = true
		}
	}
	return
}
