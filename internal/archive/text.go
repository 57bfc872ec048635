package archive

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

type textEncoding int

const (
	encodingPlain textEncoding = iota
	encodingUTF8BOM
	encodingUTF16LE
	encodingUTF16BE
)

// Extensions whose parts carry text worth showing. Everything else an OOXML
// container holds (images, fonts, thumbnails) stays binary.
var textualExtensions = map[string]struct{}{
	"xml":  {},
	"rels": {},
	"txt":  {},
}

// IsTextualName reports whether the entry name looks like a textual part,
// judged by the segment after the last dot (the whole name when there is none).
func IsTextualName(name string) bool {
	ext := name
	if idx := strings.LastIndexByte(name, '.'); idx >= 0 {
		ext = name[idx+1:]
	}
	_, ok := textualExtensions[strings.ToLower(ext)]
	return ok
}

// DecodeText converts raw part bytes to a UTF-8 string. UTF-16 parts are
// transcoded, a UTF-8 BOM is stripped, and invalid sequences become U+FFFD
// so decoding never fails.
func DecodeText(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}

	switch detectEncoding(raw) {
	case encodingUTF8BOM:
		raw = raw[3:]
	case encodingUTF16LE:
		return decodeUTF16(raw, unicode.LittleEndian)
	case encodingUTF16BE:
		return decodeUTF16(raw, unicode.BigEndian)
	}

	if utf8.Valid(raw) {
		return string(raw)
	}
	return strings.ToValidUTF8(string(raw), "�")
}

func detectEncoding(raw []byte) textEncoding {
	if len(raw) >= 3 && raw[0] == 0xEF && raw[1] == 0xBB && raw[2] == 0xBF {
		return encodingUTF8BOM
	}
	if len(raw) >= 2 {
		switch {
		case raw[0] == 0xFF && raw[1] == 0xFE:
			return encodingUTF16LE
		case raw[0] == 0xFE && raw[1] == 0xFF:
			return encodingUTF16BE
		}
	}
	return encodingPlain
}

func decodeUTF16(raw []byte, endian unicode.Endianness) string {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := decoder.Bytes(raw)
	if err != nil {
		return strings.ToValidUTF8(string(raw), "�")
	}
	return string(out)
}
