package gmail

import (
	"strings"

	"google.golang.org/api/gmail/v1"
)

// ExtractFields pulls the sender, subject and first usable text body out
// of a full-format message. A missing payload, header list or parts list
// at any level is treated as empty, never as an error. Later duplicate
// headers overwrite earlier ones.
func ExtractFields(m *gmail.Message) (from, subject, body string) {
	if m == nil || m.Payload == nil {
		return "", "", ""
	}
	for _, h := range m.Payload.Headers {
		switch strings.ToLower(h.Name) {
		case "from":
			from = h.Value
		case "subject":
			subject = h.Value
		}
	}
	if m.Payload.Body != nil && m.Payload.Body.Data != "" {
		return from, subject, decodeBase64URL(m.Payload.Body.Data)
	}
	return from, subject, walkParts(m.Payload.Parts)
}

// walkParts searches depth-first in sibling order for the first
// text/plain or text/html part carrying inline data. First found wins,
// not preference: a text/html part earlier in the tree beats a
// text/plain part after it.
func walkParts(parts []*gmail.MessagePart) string {
	for _, p := range parts {
		if p == nil {
			continue
		}
		if (p.MimeType == "text/plain" || p.MimeType == "text/html") && p.Body != nil && p.Body.Data != "" {
			return decodeBase64URL(p.Body.Data)
		}
		if body := walkParts(p.Parts); body != "" {
			return body
		}
	}
	return ""
}
