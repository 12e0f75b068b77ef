package unslpk

import (
	"bytes"
	"encoding/json"
	"io"
)

// reindentJSON rewrites one JSON document from r to w with two-space
// indentation. Values and member order are preserved; only whitespace
// changes, and the output is deterministic for a given input.
func reindentJSON(w io.Writer, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return err
	}

	_, err = buf.WriteTo(w)
	return err
}
