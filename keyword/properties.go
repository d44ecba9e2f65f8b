// Copyright 2024-2026 The Veldt Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package keyword

type property uint8

const (
	valid property = 1 << iota

	punct
	word
	openBr
	closeBr

	// Spacing classes consulted by the renderer.
	spaceBefore
	spaceAfter
)

func (k Keyword) properties() property {
	if int(k) < len(properties) {
		return properties[k]
	}
	return 0
}

// properties is a table of keyword properties, stored as bitsets.
var properties = [...]property{
	ColonColon: valid | punct,
	Langle:     valid | punct | openBr,
	Rangle:     valid | punct | closeBr,
	LParen:     valid | punct | openBr,
	RParen:     valid | punct | closeBr,
	LBrace:     valid | punct | openBr,
	RBrace:     valid | punct | closeBr,
	LBracket:   valid | punct | openBr,
	RBracket:   valid | punct | closeBr,
	Comma:      valid | punct | spaceAfter,
	Plus:       valid | punct | spaceBefore | spaceAfter,
	Eq:         valid | punct | spaceBefore | spaceAfter,
	Colon:      valid | punct | spaceAfter,
	Arrow:      valid | punct | spaceBefore | spaceAfter,
	Amp:        valid | punct,
	Under:      valid | word,
	Minus:      valid | punct | spaceBefore | spaceAfter,
	Star:       valid | punct | spaceBefore | spaceAfter,
	Slash:      valid | punct | spaceBefore | spaceAfter,
	As:         valid | word | spaceBefore | spaceAfter,
}

// IsValid returns whether this is a valid keyword value (not including
// [Unknown]).
func (k Keyword) IsValid() bool {
	return k.properties()&valid != 0
}

// IsWordy returns whether this keyword is rendered as an identifier-like
// word, rather than as punctuation.
func (k Keyword) IsWordy() bool {
	return k.properties()&word != 0
}

// IsOpen returns whether this keyword opens a bracket pair.
func (k Keyword) IsOpen() bool {
	return k.properties()&openBr != 0
}

// IsClose returns whether this keyword closes a bracket pair.
func (k Keyword) IsClose() bool {
	return k.properties()&closeBr != 0
}

// SpaceBefore returns whether the renderer places a space before this
// keyword.
func (k Keyword) SpaceBefore() bool {
	return k.properties()&spaceBefore != 0
}

// SpaceAfter returns whether the renderer places a space after this keyword.
func (k Keyword) SpaceAfter() bool {
	return k.properties()&spaceAfter != 0
}

// Lookup looks up the keyword matching the given text exactly.
func Lookup(text string) Keyword {
	for k := range Keyword(totalKeyword) {
		if k.IsValid() && k.String() == text {
			return k
		}
	}
	return Unknown
}
