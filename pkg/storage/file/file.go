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
package filedriver

import (
	"fmt"
	"io/ioutil"
	stdurl "net/url"
	"os"
	"path/filepath"
	"strings"
)

// Open opens a local path or file URL for reading.
func Open(url string) (*os.File, error) {
	path, err := urlToPath(url)
	if err != nil {
		return nil, err
	}

	return os.Open(path)
}

// Create returns a Writer for a local path or file URL. Nothing appears at
// the destination until the Writer is committed.
func Create(url string) (*Writer, error) {
	path, err := urlToPath(url)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	f, err := ioutil.TempFile(dir, ".tmp.filedriver")
	if err != nil {
		return nil, err
	}

	return &Writer{
		path: path,
		f:    f,
	}, nil
}

// Stat returns a FileInfo describing the local path or file URL.
func Stat(url string) (os.FileInfo, error) {
	path, err := urlToPath(url)
	if err != nil {
		return nil, err
	}

	return os.Stat(path)
}

// urlToPath resolves a file URL to a cleaned filesystem path. Anything not
// starting with file:// is a local path and is taken verbatim.
func urlToPath(url string) (string, error) {
	if !strings.HasPrefix(url, "file://") {
		return filepath.Clean(url), nil
	}

	u, err := stdurl.Parse(url)
	if err != nil {
		return "", err
	}

	if u.Host != "" && u.Host != "localhost" {
		return "", fmt.Errorf("file URL with remote host: %s", url)
	}

	return filepath.Clean(u.Path), nil
}
