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

import (
	"fmt"
	"strings"
)

// charset is one of the ECMA-119 7.4 character sets used by identifier
// fields. Identifiers are space padded.
type charset struct {
	name        string
	allowed     string
	replacement rune
}

var (
	aCharacters = charset{"a-characters", `ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_!"%&'()*+,-./:;<=>? `, '?'}
	dCharacters = charset{"d-characters", "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_", '_'}
)

func (c charset) contains(r rune) bool {
	return strings.ContainsRune(c.allowed, r)
}

// encode maps v onto the charset and pads or truncates it to width runes.
func (c charset) encode(v string, width int) string {
	mapped := strings.Map(func(r rune) rune {
		if c.contains(r) {
			return r
		}
		return c.replacement
	}, strings.ToUpper(v))

	runes := []rune(mapped)
	if len(runes) > width {
		runes = runes[:width]
	}
	return string(runes) + strings.Repeat(" ", width-len(runes))
}

// decode strips padding from raw and checks what is left.
func (c charset) decode(raw string) (string, error) {
	v := strings.TrimRight(raw, " ")
	if i := strings.IndexFunc(v, func(r rune) bool { return !c.contains(r) }); i >= 0 {
		return "", fmt.Errorf("invalid %s byte 0x%02x at position %d", c.name, v[i], i)
	}
	return v, nil
}

// StrA encodes v as a width byte a-character identifier.
func StrA(v string, width int) string {
	return aCharacters.encode(v, width)
}

// StrD encodes v as a width byte d-character identifier.
func StrD(v string, width int) string {
	return dCharacters.encode(v, width)
}
