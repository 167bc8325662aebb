package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ============================================================================
// OUTPUT — JSON and pretty rendering shared by all commands
// ============================================================================

// writeResult serializes v to stdout in the resolved format. Commands with a
// dedicated text rendering pass it as textFn; others fall back to pretty
// JSON when "text" is requested.
func writeResult(v interface{}, textFn func(io.Writer) error) error {
	w := os.Stdout
	switch resolveFormat() {
	case "pretty":
		return writeJSON(w, v, true)
	case "text":
		if textFn != nil {
			return textFn(w)
		}
		return writeJSON(w, v, true)
	default:
		return writeJSON(w, v, false)
	}
}

func writeJSON(w io.Writer, v interface{}, pretty bool) error {
	var out []byte
	var err error
	if pretty {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
