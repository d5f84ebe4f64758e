package file

import (
	"bytes"
	"encoding/json"
)

const jsonIndent = "    "

// encodeJSON marshals v with four-space indentation and without escaping
// HTML or non-ASCII characters. No trailing newline is written.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
