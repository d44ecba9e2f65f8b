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

package parser

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/veldtlang/veldtfmt/keyword"
)

// SyntaxError is the error returned for input that does not match the
// grammar. Offset is a byte offset into the source text.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Msg)
}

const (
	tokEOF tokenKind = iota

	tokIdent
	tokLifetime // Stored without the leading apostrophe.
	tokNumber
	tokString // Stored verbatim, quotes included.
	tokPunct
)

type tokenKind byte

type token struct {
	kind   tokenKind
	kw     keyword.Keyword // Set for tokPunct.
	text   string
	offset int
}

// puncts are the punctuation particles, multi-rune ones first so that ::
// wins over : and -> over -.
var puncts = []keyword.Keyword{
	keyword.ColonColon, keyword.Arrow,
	keyword.Langle, keyword.Rangle,
	keyword.LParen, keyword.RParen,
	keyword.LBrace, keyword.RBrace,
	keyword.LBracket, keyword.RBracket,
	keyword.Comma, keyword.Plus, keyword.Eq, keyword.Colon,
	keyword.Amp, keyword.Minus, keyword.Star, keyword.Slash,
}

// lex converts source text into a token stream, ending with a tokEOF whose
// offset is len(src).
func lex(src string) ([]token, error) {
	var toks []token
	pos := 0
	for pos < len(src) {
		rest := src[pos:]
		r, size := utf8.DecodeRuneInString(rest)

		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			pos += size

		case isIdentStart(r):
			n := identLen(rest)
			text := rest[:n]
			tok := token{kind: tokIdent, text: text, offset: pos}
			// A handful of words are grammar particles, not names.
			if kw := keyword.Lookup(text); kw.IsWordy() {
				tok = token{kind: tokPunct, kw: kw, offset: pos}
			}
			toks = append(toks, tok)
			pos += n

		case r == '\'':
			n := identLen(rest[1:])
			if n == 0 {
				return nil, &SyntaxError{Offset: pos, Msg: "expected lifetime name after '"}
			}
			toks = append(toks, token{kind: tokLifetime, text: rest[1 : 1+n], offset: pos})
			pos += 1 + n

		case unicode.IsDigit(r):
			n := len(rest)
			for i, d := range rest {
				if !unicode.IsDigit(d) && d != '_' {
					n = i
					break
				}
			}
			toks = append(toks, token{kind: tokNumber, text: rest[:n], offset: pos})
			pos += n

		case r == '"':
			n := strings.IndexByte(rest[1:], '"')
			if n < 0 {
				return nil, &SyntaxError{Offset: pos, Msg: "unterminated string literal"}
			}
			toks = append(toks, token{kind: tokString, text: rest[:n+2], offset: pos})
			pos += n + 2

		default:
			kw := keyword.Unknown
			for _, p := range puncts {
				if strings.HasPrefix(rest, p.String()) {
					kw = p
					break
				}
			}
			if kw == keyword.Unknown {
				return nil, &SyntaxError{Offset: pos, Msg: fmt.Sprintf("unexpected character %q", r)}
			}
			toks = append(toks, token{kind: tokPunct, kw: kw, offset: pos})
			pos += len(kw.String())
		}
	}

	return append(toks, token{kind: tokEOF, offset: len(src)}), nil
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// identLen returns the length of the identifier prefix of s, which may be
// zero.
func identLen(s string) int {
	for i, r := range s {
		if !isIdentStart(r) && !unicode.IsDigit(r) {
			return i
		}
	}
	return len(s)
}
