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

package synthiso_cli

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/pappasjfed/isomd5sum/pkg/iso9660"
	filedriver "github.com/pappasjfed/isomd5sum/pkg/storage/file"
)

type InspectCmd struct {
	Image string `short:"i" help:"Path or file URL of the image" required:"true"`
}

type inspection struct {
	Size                    int64
	ApplicationUseBlank     bool
	PrimaryVolumeDescriptor *iso9660.PrimaryVolumeDescriptor
}

func (cmd *InspectCmd) Run(globals *Globals) error {
	f, err := filedriver.Open(cmd.Image)
	if err != nil {
		return errors.Wrap(err, "opening image")
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return errors.Wrap(err, "stat image")
	}

	var pvd iso9660.PrimaryVolumeDescriptor
	pvdSector := io.NewSectionReader(f, iso9660.PrimaryVolumeDescriptorSector*iso9660.LogicalBlockSize, iso9660.LogicalBlockSize)
	if err := iso9660.DecodePrimaryVolumeDescriptor(pvdSector, &pvd); err != nil {
		return errors.Wrap(err, "decoding primary volume descriptor")
	}

	vdstSector := io.NewSectionReader(f, iso9660.TerminatorSector*iso9660.LogicalBlockSize, iso9660.LogicalBlockSize)
	if err := iso9660.DecodeTerminator(vdstSector); err != nil {
		return errors.Wrap(err, "decoding volume descriptor set terminator")
	}

	if declared := int64(iso9660.SectorsToBytes(pvd.VolumeSpaceSize)); declared != fi.Size() {
		return errors.Errorf("volume space size of %d sectors (%d bytes) does not match image length %d", pvd.VolumeSpaceSize, declared, fi.Size())
	}

	jenc := json.NewEncoder(stdout)
	jenc.SetIndent("", "  ")
	return jenc.Encode(&inspection{
		Size:                    fi.Size(),
		ApplicationUseBlank:     pvd.ApplicationUseBlank(),
		PrimaryVolumeDescriptor: &pvd,
	})
}
