// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package script

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decode turns raw file bytes into UTF-8 text. A byte order mark selects
// the encoding and is stripped; otherwise the bytes are used as UTF-8 when
// valid and read as Windows-1252 when not, which is what older game files
// ship in.
func decode(src []byte) (string, error) {
	out, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), src)
	if err != nil {
		return "", err
	}
	if utf8.Valid(out) {
		return string(out), nil
	}

	out, err = charmap.Windows1252.NewDecoder().Bytes(out)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
