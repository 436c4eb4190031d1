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

package synthiso

import (
	"github.com/alecthomas/units"
	"github.com/pkg/errors"

	"github.com/pappasjfed/isomd5sum/pkg/iso9660"
)

// Options controls how an image is materialized.
type Options struct {
	// Sparse leaves holes in the zero fill of large images.
	Sparse bool

	// Images requested smaller than this are always written densely.
	DensityThreshold uint64

	// Dense zero fill is written in units of DenseChunkSize.
	DenseChunkSize int

	// Sparse fill writes SparseWriteSize bytes, then skips up to HoleSize.
	SparseWriteSize int
	HoleSize        int64

	SystemIdentifier string
	VolumeIdentifier string

	// Optional.
	Metrics *Metrics
}

// DefaultOptions returns sparse options with the standard fill cadence.
func DefaultOptions() Options {
	return Options{
		Sparse:           true,
		DensityThreshold: uint64(100 * units.MiB),
		DenseChunkSize:   int(1 * units.MiB),
		SparseWriteSize:  int(4 * units.KiB),
		HoleSize:         int64(10 * units.MiB),
		SystemIdentifier: iso9660.DefaultSystemIdentifier,
		VolumeIdentifier: iso9660.DefaultVolumeIdentifier,
	}
}

func (o *Options) validate() error {
	if o.DenseChunkSize <= 0 {
		return errors.Errorf("invalid dense chunk size: %d", o.DenseChunkSize)
	}
	if o.SparseWriteSize <= 0 {
		return errors.Errorf("invalid sparse write size: %d", o.SparseWriteSize)
	}
	if o.HoleSize <= 0 {
		return errors.Errorf("invalid hole size: %d", o.HoleSize)
	}
	return nil
}
