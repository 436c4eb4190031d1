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

// Package zerodriver provides fixed size objects that read as zeros.
package zerodriver

import (
	"errors"
	"io"
)

var errNegativeOffset = errors.New("zerodriver: negative offset")

// Object is a read-only run of size zero bytes.
type Object struct {
	size int64
	pos  int64
}

func NewObject(size int64) *Object {
	return &Object{
		size: size,
	}
}

func (o *Object) Size() int64 {
	return o.size
}

func (o *Object) Read(p []byte) (n int, err error) {
	n, err = o.ReadAt(p, o.pos)
	o.pos += int64(n)
	return
}

func (o *Object) ReadAt(p []byte, off int64) (n int, err error) {
	if off < 0 {
		return 0, errNegativeOffset
	}

	if off >= o.size {
		return 0, io.EOF
	}

	max := o.size - off
	if int64(len(p)) < max {
		max = int64(len(p))
	}

	for n = 0; int64(n) < max; n++ {
		p[n] = 0
	}
	return
}
