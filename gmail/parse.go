package gmail

import (
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/api/gmail/v1"
)

// ParseError reports a response body that could not be decoded into a
// message. Raw keeps the response text for diagnostics.
type ParseError struct {
	Raw []byte
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("decode message: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Syntax reports whether the failure was malformed JSON, as opposed to
// well-formed JSON that does not match the message shape.
func (e *ParseError) Syntax() bool {
	var se *json.SyntaxError
	return errors.As(e.Err, &se)
}

// ParseMessage decodes a full-format message response body.
func ParseMessage(raw []byte) (*gmail.Message, error) {
	var m gmail.Message
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, &ParseError{Raw: raw, Err: err}
	}
	return &m, nil
}
