package main

import (
	"encoding/json"
	"io"
)

// writeJSON encodes v as indented JSON. HTML escaping is off so paths and
// caption text such as "-->" or "&" are printed as written.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
