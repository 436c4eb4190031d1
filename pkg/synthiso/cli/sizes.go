// Copyright © 2019 NVIDIA Corporation
package synthiso_cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/pappasjfed/isomd5sum/pkg/sizeclass"
)

type SizesCmd struct{}

func (cmd *SizesCmd) Run(globals *Globals) error {
	w := tabwriter.NewWriter(stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBYTES\tSIZE\tMEDIA")
	for _, c := range sizeclass.All() {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", c.Name, int64(c.Bytes), c.Bytes, c.Media)
	}
	return w.Flush()
}
