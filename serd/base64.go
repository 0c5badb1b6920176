package serd

import (
	"encoding/base64"
	"strings"
)

// base64Encode encodes data as standard base64. If wrap > 0, a newline is
// inserted every wrap encoded characters (as serd's C counterpart does for
// long blobs embedded in pretty-printed output); wrap <= 0 produces a single
// unwrapped line.
func base64Encode(data []byte, wrap int) string {
	encoded := base64.StdEncoding.EncodeToString(data)
	if wrap <= 0 {
		return encoded
	}
	var b strings.Builder
	for i := 0; i < len(encoded); i += wrap {
		end := i + wrap
		if end > len(encoded) {
			end = len(encoded)
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(encoded[i:end])
	}
	return b.String()
}

// base64Decode decodes s, tolerating embedded whitespace (newlines inserted
// by wrapped encoders, or stray spaces from copy/paste).
func base64Decode(s string) ([]byte, bool) {
	filtered := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if isASCIISpace(s[i]) {
			continue
		}
		filtered = append(filtered, s[i])
	}
	out, err := base64.StdEncoding.DecodeString(string(filtered))
	if err != nil {
		return nil, false
	}
	return out, true
}

// base64DecodedLen returns an upper bound on the number of bytes base64Decode
// will produce for an encoded string of the given length, without actually
// decoding it.
func base64DecodedLen(encodedLen int) int {
	return base64.StdEncoding.DecodedLen(encodedLen)
}
