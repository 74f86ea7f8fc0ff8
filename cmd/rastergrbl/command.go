//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

var argEscapes = map[byte]byte{
	'b': '\b',
	't': '\t',
	'n': '\n',
	'r': '\r',
	'e': '\033',
}

func isArgSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// argWord accumulates a single shell style word
type argWord struct {
	text   []byte
	quote  byte // Active quote character, or 0
	escape bool
	digits int // Octal digits seen after a backslash
	octal  int
}

func (word *argWord) flushOctal() {
	if word.digits > 0 {
		word.text = append(word.text, byte(word.octal))
	}

	word.digits = 0
	word.octal = 0
}

// escaped consumes the character after a backslash.
// It returns false when the character ends an octal escape and must be
// handled as a plain character.
func (word *argWord) escaped(c byte) (consumed bool) {
	if c >= '0' && c <= '7' {
		word.octal = word.octal*8 + int(c-'0')
		word.digits++
		if word.digits == 3 {
			word.flushOctal()
			word.escape = false
		}
		consumed = true
		return
	}

	word.escape = false

	if word.digits > 0 {
		word.flushOctal()
		return
	}

	if special, ok := argEscapes[c]; ok {
		c = special
	}
	word.text = append(word.text, c)

	consumed = true
	return
}

// ScanArgs is a bufio.SplitFunc for quoted, escaped argument lists
func ScanArgs(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isArgSpace(data[start]) {
		start++
	}

	if start == len(data) {
		advance = start
		return
	}

	var word argWord

	for n := start; n < len(data); n++ {
		c := data[n]

		if word.escape && word.escaped(c) {
			continue
		}

		switch {
		case word.quote != 0 && c == word.quote:
			word.quote = 0
		case word.quote == 0 && (c == '"' || c == '\''):
			word.quote = c
		case c == '\\':
			word.escape = true
		case word.quote == 0 && isArgSpace(c):
			advance = n
			token = word.text
			return
		default:
			word.text = append(word.text, c)
		}
	}

	if !atEOF {
		// Ask for more, the word may continue
		return
	}

	if word.escape && word.digits > 0 {
		word.flushOctal()
		word.escape = false
	}

	if word.quote != 0 || word.escape {
		err = fmt.Errorf("incomplete argument: '%v'", string(data[start:]))
		return
	}

	advance = len(data)
	token = word.text

	return
}

// CommandExpand splits a reader into arguments, expanding ${ENV} references
func CommandExpand(reader io.Reader) (out []string, err error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(ScanArgs)

	var words []string
	for scanner.Scan() {
		words = append(words, os.ExpandEnv(scanner.Text()))
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	out = words

	return
}

// expandArgs replaces every '@file' argument with the arguments in that file
func expandArgs(args []string) (out []string, err error) {
	for _, arg := range args {
		if !strings.HasPrefix(arg, "@") || len(arg) == 1 {
			out = append(out, arg)
			continue
		}

		var reader *os.File
		reader, err = os.Open(arg[1:])
		if err != nil {
			return
		}

		var expanded []string
		expanded, err = CommandExpand(reader)
		reader.Close()
		if err != nil {
			return
		}

		TraceVerbosef(VerbosityDebug, "%v: %v", arg, expanded)

		out = append(out, expanded...)
	}

	return
}
