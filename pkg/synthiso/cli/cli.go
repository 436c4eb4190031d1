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
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

// Command output goes here; logs go to the zap status stream.
var stdout io.Writer = color.Output

type Globals struct {
	LogLevel string `help:"Set the logging level (debug|info|warn|error)" default:"info"`
}

// Level parses LogLevel.
func (g *Globals) Level() (zapcore.Level, error) {
	var ll zapcore.Level
	if err := ll.Set(g.LogLevel); err != nil {
		return ll, errors.Wrap(err, "invalid log level")
	}
	return ll, nil
}

type CLI struct {
	Globals

	Generate GenerateCmd `cmd:"" help:"Generate a synthetic ISO 9660 image"`
	Inspect  InspectCmd  `cmd:"" help:"Inspect the volume descriptors of an image"`
	Sizes    SizesCmd    `cmd:"" help:"List the named image sizes"`
	Version  VersionCmd  `cmd:"" help:"Print the client version information"`
}
