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

package operations

import (
	scrawl "github.com/tkwade/scrawl/types"
)

// Paste splices the clipboard payload into the buffer at the cursor.
type Paste struct {
	Op
}

func (op *Paste) Perform(e scrawl.Editor, multiplier int) error {
	op.init(e, multiplier)
	for i := 0; i < op.Multiplier; i++ {
		if err := e.Paste(); err != nil {
			return err
		}
	}
	return nil
}
