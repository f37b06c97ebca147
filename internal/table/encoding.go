// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
)

var (
	// ErrEncoding is returned for unknown encoding names and for text that
	// cannot be represented in the requested encoding.
	ErrEncoding = errors.New("unsupported encoding")

	// ErrDecode is returned when input bytes are not valid in the requested
	// encoding.
	ErrDecode = errors.New("decode failed")
)

// DefaultEncoding is used when no encoding name is given.
const DefaultEncoding = "utf-8"

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// aliases maps names common outside the WHATWG registry onto an encoding.
var aliases = map[string]encoding.Encoding{
	"latin-1":    charmap.ISO8859_1,
	"latin1":     charmap.ISO8859_1,
	"iso-8859-1": charmap.ISO8859_1,
	"iso8859-1":  charmap.ISO8859_1,
}

// Codec converts between a named text encoding and UTF-8.
type Codec struct {
	// Name is the canonical name of the encoding.
	Name string

	enc  encoding.Encoding
	utf8 bool
	bom  bool
}

// LookupEncoding resolves an encoding name. Matching ignores case and treats
// "_" like "-". An empty name selects DefaultEncoding.
func LookupEncoding(name string) (Codec, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		n = DefaultEncoding
	}

	switch n {
	case "utf-8-sig", "utf_8_sig", "utf8-sig":
		return Codec{Name: "utf-8-sig", utf8: true, bom: true}, nil
	case "cp932", "ms-932":
		n = "windows-31j"
	}

	if enc, ok := aliases[n]; ok {
		return Codec{Name: "iso-8859-1", enc: enc}, nil
	}

	enc, err := htmlindex.Get(n)
	if err != nil {
		enc, err = htmlindex.Get(strings.ReplaceAll(n, "_", "-"))
	}
	if err != nil {
		return Codec{}, fmt.Errorf("%w: %q", ErrEncoding, name)
	}

	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = n
	}
	canonical = strings.ToLower(canonical)

	if canonical == "utf-8" {
		return Codec{Name: canonical, utf8: true}, nil
	}

	return Codec{Name: canonical, enc: enc}, nil
}

// Decode converts raw bytes in the codec's encoding to UTF-8. A leading UTF-8
// byte order mark is dropped. Bytes that do not decode cleanly yield
// ErrDecode.
func (c Codec) Decode(raw []byte) ([]byte, error) {
	if c.utf8 {
		text := bytes.TrimPrefix(raw, utf8BOM)
		if !utf8.Valid(text) {
			return nil, fmt.Errorf("%w: input is not valid %s at byte %d", ErrDecode, c.Name, invalidOffset(text))
		}
		return text, nil
	}

	text, err := c.enc.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, c.Name, err)
	}
	if i := bytes.IndexRune(text, utf8.RuneError); i >= 0 {
		return nil, fmt.Errorf("%w: input is not valid %s near decoded byte %d", ErrDecode, c.Name, i)
	}
	return text, nil
}

// Encode converts UTF-8 text to the codec's encoding. Characters the target
// encoding cannot represent yield ErrEncoding.
func (c Codec) Encode(text []byte) ([]byte, error) {
	if c.utf8 {
		if c.bom {
			return append(append([]byte(nil), utf8BOM...), text...), nil
		}
		return text, nil
	}

	out, err := c.enc.NewEncoder().Bytes(text)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot represent text in %s: %v", ErrEncoding, c.Name, err)
	}
	return out, nil
}

// invalidOffset returns the byte offset of the first invalid UTF-8 sequence.
func invalidOffset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(b)
}
