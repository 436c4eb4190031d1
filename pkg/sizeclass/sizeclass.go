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

// Package sizeclass names the image sizes of common optical media.
package sizeclass

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/units"
)

// Class is a named image size.
type Class struct {
	Name  string
	Bytes units.Base2Bytes
	Media string
}

var classes = []Class{
	{"tiny", 512 * units.KiB, "small test"},
	{"small", 1 * units.MiB, "minimum viable"},
	{"cd", 700 * units.MiB, "CD-ROM"},
	{"dvd", 9 * units.GiB / 2, "DVD"},
	{"dvd_dl", 17 * units.GiB / 2, "DVD dual layer"},
	{"bd", 25 * units.GiB, "Blu-ray"},
}

// UnknownSizeError is returned for a size that is neither a class name nor
// a byte count.
type UnknownSizeError struct {
	Size string
}

func (e *UnknownSizeError) Error() string {
	return fmt.Sprintf("unknown size %q (available: %s)", e.Size, strings.Join(Names(), ", "))
}

// All returns the size classes from smallest to largest.
func All() []Class {
	return append([]Class(nil), classes...)
}

func Names() []string {
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.Name
	}
	return names
}

func Lookup(name string) (Class, bool) {
	for _, c := range classes {
		if c.Name == name {
			return c, true
		}
	}
	return Class{}, false
}

// Parse resolves a class name, a decimal byte count or a unit-suffixed byte
// count (e.g. "3GiB") to a number of bytes. The returned label is the class
// name, or the input when it was not a class.
func Parse(s string) (uint64, string, error) {
	if c, ok := Lookup(s); ok {
		return uint64(c.Bytes), c.Name, nil
	}

	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return n, s, nil
	}

	n, err := units.ParseStrictBytes(s)
	if err != nil || n < 0 {
		return 0, "", &UnknownSizeError{s}
	}
	return uint64(n), s, nil
}
