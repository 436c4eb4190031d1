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

// Package synthiso writes synthetic ISO 9660 images: a blank system area,
// a primary volume descriptor, a set terminator and a zero filled remainder
// that is left sparse for large images.
package synthiso

import (
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/pappasjfed/isomd5sum/pkg/countio"
	"github.com/pappasjfed/isomd5sum/pkg/iso9660"
	"github.com/pappasjfed/isomd5sum/pkg/safecast"
	filedriver "github.com/pappasjfed/isomd5sum/pkg/storage/file"
	zerodriver "github.com/pappasjfed/isomd5sum/pkg/storage/zero"
	"github.com/pappasjfed/isomd5sum/pkg/unixcompat"
)

// Result describes a materialized image.
type Result struct {
	Path           string
	RequestedBytes uint64
	SectorCount    uint32

	// Logical length of the image.
	Size int64

	DenseBytes int64
	HoleBytes  int64

	// Sparse is true when the fill was written with holes.
	Sparse bool

	// AllocatedBytes is only meaningful when AllocatedKnown is set.
	AllocatedBytes int64
	AllocatedKnown bool
}

// Materialize writes a synthetic image of at least requestedBytes to url, a
// local path or file URL. The image is staged next to the destination and
// only replaces it once completely written.
func Materialize(url string, requestedBytes uint64, opts Options) (res *Result, err error) {
	if err = opts.validate(); err != nil {
		return nil, err
	}

	sectorCount, err := iso9660.SectorCountFor(requestedBytes)
	if err != nil {
		return nil, err
	}
	if sectorCount < iso9660.HeaderSectors {
		sectorCount = iso9660.HeaderSectors
	}
	totalBytes := safecast.Uint64ToInt64(iso9660.SectorsToBytes(sectorCount))

	sparse := opts.Sparse && requestedBytes >= opts.DensityThreshold
	if sparse && !unixcompat.HolesSupported() {
		zap.L().Debug("sparse files unsupported on this platform, writing densely")
		sparse = false
	}

	out, err := filedriver.Create(url)
	if err != nil {
		return nil, errors.Wrap(err, "creating "+url)
	}
	defer func() {
		if aerr := out.Abort(); aerr != nil {
			err = multierror.Append(err, errors.Wrap(aerr, "aborting "+out.TempPath()))
		}
		if err != nil {
			res = nil
		}
	}()

	zap.L().Debug("materializing image",
		zap.String("path", out.Path()),
		zap.Uint64("requested", requestedBytes),
		zap.Int64("size", totalBytes),
		zap.Uint32("sectors", sectorCount),
		zap.Bool("sparse", sparse),
	)

	cw := countio.NewWriteSeeker(out)
	if err = writeHeader(cw, sectorCount, &opts); err != nil {
		return
	}

	remaining := totalBytes - iso9660.HeaderSize
	if sparse {
		err = writeSparse(cw, remaining, &opts)
	} else {
		err = writeDense(cw, remaining, &opts)
	}
	if err != nil {
		return
	}

	if cw.Offset() != totalBytes {
		panic("never")
	}

	// A trailing hole does not extend a file; pin the length.
	if err = out.Truncate(totalBytes); err != nil {
		err = errors.Wrap(err, "truncating "+out.TempPath())
		return
	}

	path, err := out.Commit()
	if err != nil {
		err = errors.Wrap(err, "committing "+out.Path())
		return
	}

	fi, err := filedriver.Stat(path)
	if err != nil {
		err = errors.Wrap(err, "stat "+path)
		return
	}

	res = &Result{
		Path:           path,
		RequestedBytes: requestedBytes,
		SectorCount:    sectorCount,
		Size:           fi.Size(),
		DenseBytes:     cw.BytesWritten(),
		HoleBytes:      cw.BytesSkipped(),
		Sparse:         sparse,
	}
	res.AllocatedBytes, res.AllocatedKnown = unixcompat.AllocatedBytes(path)

	if opts.Metrics != nil {
		opts.Metrics.observe(res)
	}

	zap.L().Debug("materialized image",
		zap.String("path", path),
		zap.Int64("size", res.Size),
		zap.Int64("dense", res.DenseBytes),
		zap.Int64("holes", res.HoleBytes),
	)
	return
}

// writeHeader writes the system area and the volume descriptor set.
func writeHeader(w io.Writer, sectorCount uint32, opts *Options) error {
	systemArea := make([]byte, iso9660.SystemAreaSectors*iso9660.LogicalBlockSize)
	if _, err := w.Write(systemArea); err != nil {
		return errors.Wrap(err, "writing system area")
	}

	pvd := iso9660.NewPrimaryVolumeDescriptor(sectorCount)
	if opts.SystemIdentifier != "" {
		pvd.SystemIdentifier = opts.SystemIdentifier
	}
	if opts.VolumeIdentifier != "" {
		pvd.VolumeIdentifier = opts.VolumeIdentifier
	}
	if _, err := pvd.WriteTo(w); err != nil {
		return errors.Wrap(err, "writing primary volume descriptor")
	}

	if _, err := iso9660.NewTerminator().WriteTo(w); err != nil {
		return errors.Wrap(err, "writing volume descriptor set terminator")
	}
	return nil
}

func writeDense(w io.Writer, remaining int64, opts *Options) error {
	buf := make([]byte, opts.DenseChunkSize)
	src := zerodriver.NewObject(remaining)
	step := 100 * int64(len(buf))
	for remaining > 0 {
		n, err := io.CopyBuffer(w, io.LimitReader(src, step), buf)
		if err != nil {
			return errors.Wrap(err, "writing zero fill")
		}
		remaining -= n
		zap.L().Debug("zero fill", zap.Int64("written", src.Size()-remaining), zap.Int64("remaining", remaining))
	}
	return nil
}

// writeSparse alternates short dense writes with holes, always ending on a
// write.
func writeSparse(cw *countio.WriteSeeker, remaining int64, opts *Options) error {
	zeros := make([]byte, opts.SparseWriteSize)
	for remaining > 0 {
		n := int64(len(zeros))
		if remaining < n {
			n = remaining
		}

		if _, err := cw.Write(zeros[:n]); err != nil {
			return errors.Wrap(err, "writing sparse fill")
		}
		remaining -= n

		if remaining > opts.HoleSize {
			if err := cw.Skip(opts.HoleSize); err != nil {
				return errors.Wrap(err, "seeking past hole")
			}
			remaining -= opts.HoleSize
		}
	}
	return nil
}
