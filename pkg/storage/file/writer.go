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
	"errors"
	"os"
)

// Mode of committed files. TempFile creates 0600.
const Mode os.FileMode = 0644

var CommitOnAbortedWriter = errors.New("commit on aborted Writer")

// Writer is a handle for creating a local file in place of an existing one.
type Writer struct {
	path      string
	f         *os.File
	closed    bool
	aborted   bool
	committed bool
}

// Abort discards the temporary file. It is a no-op after Commit, so it may
// be deferred unconditionally.
func (w *Writer) Abort() error {
	if w.committed || w.aborted {
		return nil
	}
	w.aborted = true

	var cerr error
	if !w.closed {
		cerr = w.f.Close()
	}
	if err := os.Remove(w.f.Name()); err != nil {
		return err
	}
	return cerr
}

// Commit flushes the file to stable storage and renames it over the
// destination path.
func (w *Writer) Commit() (string, error) {
	if w.aborted {
		return "", CommitOnAbortedWriter
	}

	if err := w.f.Chmod(Mode); err != nil {
		return "", err
	}

	if err := w.f.Sync(); err != nil {
		return "", err
	}

	w.closed = true
	if err := w.f.Close(); err != nil {
		return "", err
	}

	if err := os.Rename(w.f.Name(), w.path); err != nil {
		return "", err
	}

	w.committed = true
	return w.path, nil
}

func (w *Writer) Write(p []byte) (n int, err error) {
	n, err = w.f.Write(p)
	return
}

func (w *Writer) Seek(offset int64, whence int) (int64, error) {
	return w.f.Seek(offset, whence)
}

func (w *Writer) Truncate(size int64) error {
	return w.f.Truncate(size)
}

// Path is the destination the Writer commits to.
func (w *Writer) Path() string {
	return w.path
}

// TempPath is where data is staged until Commit.
func (w *Writer) TempPath() string {
	return w.f.Name()
}
