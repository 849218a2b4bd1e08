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

package screen

import (
	"regexp"
	"unicode"

	scrawl "github.com/tkwade/scrawl/types"
)

// The Highlighter colors keywords, numbers, and quoted strings.
type Highlighter struct {
	keywordPattern      *regexp.Regexp
	numberPattern       *regexp.Regexp
	quotedStringPattern *regexp.Regexp
}

func NewHighlighter() *Highlighter {
	h := &Highlighter{}
	h.keywordPattern, _ = regexp.Compile("int|return|if|else|while|for|char|void|include")
	h.keywordPattern.Longest()
	h.numberPattern, _ = regexp.Compile("[0-9]+(\\.[0-9]*)?")
	h.quotedStringPattern, _ = regexp.Compile("\"[^\"]*\"")
	return h
}

// Highlight returns one color per byte of line.
func (h *Highlighter) Highlight(line string) []scrawl.Color {
	colors := make([]scrawl.Color, len(line))
	for j := range colors {
		colors[j] = scrawl.ColorDefault
	}

	matches := h.keywordPattern.FindAllStringIndex(line, -1)
	for _, match := range matches {
		// if there's an alphanumeric character on either side, skip this
		if checkalphanum(line, match[0], match[1]) {
			continue
		}
		for k := match[0]; k < match[1]; k++ {
			colors[k] = scrawl.ColorKeyword
		}
	}

	matches = h.numberPattern.FindAllStringIndex(line, -1)
	for _, match := range matches {
		if checkalphanum(line, match[0], match[1]) {
			continue
		}
		for k := match[0]; k < match[1]; k++ {
			colors[k] = scrawl.ColorNumber
		}
	}

	matches = h.quotedStringPattern.FindAllStringIndex(line, -1)
	for _, match := range matches {
		for k := match[0]; k < match[1]; k++ {
			colors[k] = scrawl.ColorString
		}
	}

	return colors
}

func checkalphanum(line string, start, end int) bool {
	if start > 0 {
		c := rune(line[start-1])
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			return true
		}
	}
	if end < len(line) {
		c := rune(line[end])
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			return true
		}
	}
	return false
}
