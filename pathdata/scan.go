// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathdata

import (
	"fmt"
	"strconv"
	"strings"
)

// commandLetters are the SVG path data command letters this package
// recognizes, in both absolute (upper) and relative (lower) case.
const commandLetters = "MmLlHhVvCcSsQqTtAaZz"

// scanner tokenizes an SVG path "d" string one command and one numeric
// argument at a time. It is deliberately permissive about separators,
// matching real-world SVG output (optional commas, no required
// whitespace before a negative sign or a new command letter).
type scanner struct {
	s string
	i int
}

func newScanner(s string) *scanner {
	return &scanner{s: s}
}

func (sc *scanner) skipSeparators() {
	for sc.i < len(sc.s) {
		c := sc.s[sc.i]
		if c == ',' || c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			sc.i++
			continue
		}
		break
	}
}

func (sc *scanner) atEnd() bool {
	sc.skipSeparators()
	return sc.i >= len(sc.s)
}

// peekCommand reports the next command letter without consuming it, or
// false if the next token is not a command letter.
func (sc *scanner) peekCommand() (byte, bool) {
	sc.skipSeparators()
	if sc.i >= len(sc.s) {
		return 0, false
	}
	c := sc.s[sc.i]
	if strings.IndexByte(commandLetters, c) >= 0 {
		return c, true
	}
	return 0, false
}

func (sc *scanner) readCommand() (byte, error) {
	c, ok := sc.peekCommand()
	if !ok {
		return 0, fmt.Errorf("pathdata: expected command letter at offset %d", sc.i)
	}
	sc.i++
	return c, nil
}

// readNumber reads one floating point number: optional sign, digits,
// optional fractional part, optional exponent. SVG allows numbers to
// run together without separators ("1.5.5" means "1.5 .5"), so a new
// number starts at a second '.' within the same token.
func (sc *scanner) readNumber() (float64, error) {
	sc.skipSeparators()
	start := sc.i
	seenDot := false
	n := len(sc.s)
	if sc.i < n && (sc.s[sc.i] == '+' || sc.s[sc.i] == '-') {
		sc.i++
	}
	for sc.i < n {
		c := sc.s[sc.i]
		if c >= '0' && c <= '9' {
			sc.i++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			sc.i++
			continue
		}
		break
	}
	if sc.i < n && (sc.s[sc.i] == 'e' || sc.s[sc.i] == 'E') {
		j := sc.i + 1
		if j < n && (sc.s[j] == '+' || sc.s[j] == '-') {
			j++
		}
		if j < n && sc.s[j] >= '0' && sc.s[j] <= '9' {
			for j < n && sc.s[j] >= '0' && sc.s[j] <= '9' {
				j++
			}
			sc.i = j
		}
	}
	if sc.i == start {
		return 0, fmt.Errorf("pathdata: expected number at offset %d", start)
	}
	return parseFloat(sc.s[start:sc.i])
}

// readFlag reads a single SVG arc flag: exactly one '0' or '1' digit,
// since arc flags are frequently written with no separator between them
// ("1 1 0 0110 20" packs two flags as "0110" preceding an unrelated
// coordinate pair split differently than a float scan would parse it).
func (sc *scanner) readFlag() (float64, error) {
	sc.skipSeparators()
	if sc.i >= len(sc.s) {
		return 0, fmt.Errorf("pathdata: expected flag at offset %d", sc.i)
	}
	c := sc.s[sc.i]
	if c != '0' && c != '1' {
		return 0, fmt.Errorf("pathdata: expected 0 or 1 flag at offset %d", sc.i)
	}
	sc.i++
	return float64(c - '0'), nil
}

// moreArgs reports whether the next token looks like a number rather
// than a new command letter, i.e. whether an implicit repeat of the
// current command follows.
func (sc *scanner) moreArgs() bool {
	sc.skipSeparators()
	if sc.i >= len(sc.s) {
		return false
	}
	c := sc.s[sc.i]
	return c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9')
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("pathdata: invalid number %q: %w", s, err)
	}
	return v, nil
}
