// Package msgio reads raw message input and normalizes it into the UTF-8
// form the formatting pipeline expects.
package msgio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/unicode/norm"
)

// DefaultLimit bounds how much of a message is read. A message is one chat
// turn, not a document; reading stops at the cap so oversized or hostile
// input cannot stall the formatter.
const DefaultLimit = 1 << 20

type unicodeEncoding int

const (
	encodingUnknown unicodeEncoding = iota
	encodingUTF8BOM
	encodingUTF16LE
	encodingUTF16BE
)

// ReadMessage reads one raw message from r, bounded by limit bytes (zero or
// negative selects DefaultLimit), and normalizes it: BOM-marked UTF-16 is
// decoded, a UTF-8 BOM is stripped, invalid UTF-8 becomes U+FFFD, text is
// NFC-normalized and CRLF and bare CR line endings become LF. truncated
// reports that input past the limit was discarded.
func ReadMessage(r io.Reader, limit int) (text string, truncated bool, err error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	raw, err := io.ReadAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return "", false, fmt.Errorf("read message: %w", err)
	}
	if len(raw) > limit {
		raw = raw[:limit]
		truncated = true
	}
	return normalizeMessage(raw), truncated, nil
}

// ReadMessageFile reads and normalizes one message from the file at path.
func ReadMessageFile(path string, limit int) (string, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", false, fmt.Errorf("open message: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return ReadMessage(f, limit)
}

func normalizeMessage(raw []byte) string {
	text := decodeContent(raw)
	text = strings.ToValidUTF8(text, "�")
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

func decodeContent(raw []byte) string {
	switch detectUnicodeEncoding(raw) {
	case encodingUTF8BOM:
		return string(raw[3:])
	case encodingUTF16LE:
		return decodeUTF16(raw, unicode.LittleEndian)
	case encodingUTF16BE:
		return decodeUTF16(raw, unicode.BigEndian)
	default:
		return string(raw)
	}
}

func detectUnicodeEncoding(sample []byte) unicodeEncoding {
	if len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF {
		return encodingUTF8BOM
	}
	if len(sample) >= 2 {
		switch {
		case sample[0] == 0xFF && sample[1] == 0xFE:
			return encodingUTF16LE
		case sample[0] == 0xFE && sample[1] == 0xFF:
			return encodingUTF16BE
		}
	}
	return encodingUnknown
}

func decodeUTF16(content []byte, endian unicode.Endianness) string {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := decoder.Bytes(content)
	if err != nil {
		return string(content)
	}
	return string(out)
}
