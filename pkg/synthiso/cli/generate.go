// Copyright © 2019 NVIDIA Corporation
package synthiso_cli

import (
	"fmt"

	"github.com/alecthomas/units"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/pappasjfed/isomd5sum/pkg/sizeclass"
	"github.com/pappasjfed/isomd5sum/pkg/synthiso"
)

type IsoOptions struct {
	SystemIdentifier string `help:"The name of the system that can act upon sectors 0x00-0x0F for the volume" default:"LINUX"`
	VolumeIdentifier string `help:"Identification of this volume" default:"SYNTHETIC_TEST_ISO"`
}

type GenerateCmd struct {
	Size        string     `short:"s" help:"Size class (tiny|small|cd|dvd|dvd_dl|bd) or a byte count such as 3GiB" required:"true"`
	Output      string     `short:"o" help:"Output path or file URL (default test_<size>.iso)"`
	NoSparse    bool       `help:"Write the zero fill densely instead of leaving holes"`
	MetricsFile string     `help:"Write generation metrics to this file in Prometheus text format"`
	Iso         IsoOptions `embed:"" prefix:"iso9660-"`
}

func (cmd *GenerateCmd) Run(globals *Globals) error {
	requested, label, err := sizeclass.Parse(cmd.Size)
	if err != nil {
		return err
	}

	output := cmd.Output
	if output == "" {
		output = fmt.Sprintf("test_%s.iso", label)
	}

	opts := synthiso.DefaultOptions()
	opts.Sparse = !cmd.NoSparse
	opts.SystemIdentifier = cmd.Iso.SystemIdentifier
	opts.VolumeIdentifier = cmd.Iso.VolumeIdentifier

	var reg *prometheus.Registry
	if cmd.MetricsFile != "" {
		reg = prometheus.NewRegistry()
		opts.Metrics = synthiso.NewMetrics(reg)
	}

	zap.L().Info("creating image",
		zap.String("path", output),
		zap.Uint64("requested", requested),
		zap.Stringer("requestedSize", units.Base2Bytes(requested)),
		zap.Bool("sparse", opts.Sparse),
	)

	res, err := synthiso.Materialize(output, requested, opts)
	if err != nil {
		return errors.Wrap(err, "creating "+output)
	}

	fields := []zap.Field{
		zap.String("path", res.Path),
		zap.Int64("size", res.Size),
		zap.Uint32("sectors", res.SectorCount),
		zap.Bool("sparse", res.Sparse),
	}
	if res.AllocatedKnown {
		fields = append(fields, zap.Int64("allocated", res.AllocatedBytes))
	}
	zap.L().Info("created image", fields...)

	if reg != nil {
		if err := prometheus.WriteToTextfile(cmd.MetricsFile, reg); err != nil {
			return errors.Wrap(err, "writing metrics to "+cmd.MetricsFile)
		}
	}

	fmt.Fprintf(stdout, "%s %s: %d bytes, %d sectors", color.GreenString("[OK]"), res.Path, res.Size, res.SectorCount)
	if res.AllocatedKnown {
		fmt.Fprintf(stdout, ", %d bytes allocated", res.AllocatedBytes)
	}
	fmt.Fprintln(stdout)
	return nil
}
