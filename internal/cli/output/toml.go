package output

import (
	"io"

	"github.com/pelletier/go-toml/v2"
)

// TOMLFormatter formats data as TOML. The data must encode to a table:
// a struct or a map with string keys.
type TOMLFormatter struct{}

// Format formats data as TOML.
func (f *TOMLFormatter) Format(w io.Writer, data any) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(data)
}
