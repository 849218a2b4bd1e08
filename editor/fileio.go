//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	"errors"
	"io"
	"os"
)

const readChunkSize = 4096

// openFile appends the file's content to the buffer in fixed-size chunks.
// A missing file silently leaves the buffer as it is; an open editor on a
// path that does not exist yet is an empty document, not an error.
func openFile(path string, b *Buffer) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	defer f.Close()

	chunk := make([]byte, readChunkSize)
	for {
		n, err := f.Read(chunk)
		if n > 0 {
			if aerr := b.Append(chunk[:n]); aerr != nil {
				return aerr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// saveFile writes the buffer's logical content verbatim, overwriting any
// existing file.
func saveFile(path string, b *Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(b.content[:b.length]); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
