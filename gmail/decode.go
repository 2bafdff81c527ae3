package gmail

import (
	"encoding/base64"
	"strings"
)

// decodeBase64URL decodes Gmail's padding-stripped base64url data into
// UTF-8 text. Empty input and malformed input both yield "". Invalid
// UTF-8 sequences in the decoded bytes are dropped rather than surfaced.
func decodeBase64URL(data string) string {
	if data == "" {
		return ""
	}
	if n := len(data) % 4; n != 0 {
		data += strings.Repeat("=", 4-n)
	}
	b, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		// Gmail may give standard base64, try that
		if b, err = base64.StdEncoding.DecodeString(data); err != nil {
			return ""
		}
	}
	return strings.ToValidUTF8(string(b), "")
}
