package internal

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoder converts rendered UTF-8 text into a target charset. Characters
// that cannot be represented in the target charset are substituted with
// '?' instead of failing the export.
type Encoder struct {
	cm    *charmap.Charmap  // single-byte charsets
	enc   encoding.Encoding // multi-byte charsets
	ascii bool
}

// charset aliases, normalized to canonical names
var charsetAliases = map[string]string{
	"utf8":       "utf-8",
	"utf16":      "utf-16le",
	"utf-16":     "utf-16le",
	"ascii":      "us-ascii",
	"latin1":     "iso-8859-1",
	"latin-1":    "iso-8859-1",
	"iso8859-1":  "iso-8859-1",
	"iso8859-2":  "iso-8859-2",
	"iso8859-15": "iso-8859-15",
	"cp1250":     "windows-1250",
	"cp1251":     "windows-1251",
	"cp1252":     "windows-1252",
}

// NormalizeCharset normalizes a charset name to its canonical form.
func NormalizeCharset(charset string) string {
	charset = strings.ToLower(strings.TrimSpace(charset))
	charset = strings.Trim(charset, `"'`)
	if canonical, ok := charsetAliases[charset]; ok {
		return canonical
	}
	return charset
}

// LookupEncoder returns the output encoder for the given charset name.
// The empty name selects UTF-8 passthrough. ok reports whether the
// charset is supported.
func LookupEncoder(charset string) (*Encoder, bool) {
	switch NormalizeCharset(charset) {
	case "", "utf-8":
		return &Encoder{}, true
	case "us-ascii":
		return &Encoder{ascii: true}, true
	case "iso-8859-1":
		return &Encoder{cm: charmap.ISO8859_1}, true
	case "iso-8859-2":
		return &Encoder{cm: charmap.ISO8859_2}, true
	case "iso-8859-15":
		return &Encoder{cm: charmap.ISO8859_15}, true
	case "windows-1250":
		return &Encoder{cm: charmap.Windows1250}, true
	case "windows-1251":
		return &Encoder{cm: charmap.Windows1251}, true
	case "windows-1252":
		return &Encoder{cm: charmap.Windows1252}, true
	case "utf-16le":
		return &Encoder{enc: unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)}, true
	case "utf-16be":
		return &Encoder{enc: unicode.UTF16(unicode.BigEndian, unicode.UseBOM)}, true
	default:
		return nil, false
	}
}

// Encode converts text to the encoder's charset, substituting '?' for
// any character the charset cannot represent.
func (e *Encoder) Encode(text string) ([]byte, error) {
	switch {
	case e.ascii:
		out := make([]byte, 0, len(text))
		for _, r := range text {
			if r > 0x7f {
				r = '?'
			}
			out = append(out, byte(r))
		}
		return out, nil
	case e.cm != nil:
		out := make([]byte, 0, len(text))
		for _, r := range text {
			b, ok := e.cm.EncodeRune(r)
			if !ok {
				b = '?'
			}
			out = append(out, b)
		}
		return out, nil
	case e.enc != nil:
		// UTF-16 covers the full rune repertoire; ReplaceUnsupported only
		// fires on ill-formed input.
		out, _, err := transform.Bytes(encoding.ReplaceUnsupported(e.enc.NewEncoder()), []byte(text))
		return out, err
	default:
		return []byte(text), nil
	}
}
