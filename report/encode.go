// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// Supported machine-readable formats.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
)

// ErrUnknownFormat is returned by Encode for formats it cannot write.
var ErrUnknownFormat = errors.New("report: unknown format")

// Encode writes v to w as indented JSON or as TOML. v is any of the
// report value types (Report, relation.Pair, health.Snapshot, ...).
func Encode(w io.Writer, v any, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatTOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		return enc.Encode(v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
