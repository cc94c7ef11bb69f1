package output

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/nekruzvatanshoev/carstats/pkg/carstats/dal"
)

// Output formats accepted by Formatter.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidFormats lists the allowed output formats.
var ValidFormats = []string{FormatText, FormatJSON, FormatYAML}

// IsValidFormat checks if format is one of ValidFormats.
func IsValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

// Formatter writes query results in the configured format.
type Formatter struct {
	Format string
	Writer io.Writer
}

type reporter interface {
	Report() string
}

// Print writes data to the formatter's writer.
func (f *Formatter) Print(data any) error {
	switch f.Format {
	case FormatJSON:
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case FormatYAML:
		enc := yaml.NewEncoder(f.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		return f.text(data)
	}
	return fmt.Errorf("unknown output format %q", f.Format)
}

func (f *Formatter) text(data any) error {
	w := f.Writer
	switch v := data.(type) {
	case []dal.Car:
		for _, car := range v {
			if _, err := fmt.Fprintln(w, car); err != nil {
				return err
			}
		}
	case map[dal.Color]int:
		for _, c := range dal.Colors() {
			if _, err := fmt.Fprintf(w, "%s: %d\n", c, v[c]); err != nil {
				return err
			}
		}
	case map[string]dal.Car:
		for _, model := range slices.Sorted(maps.Keys(v)) {
			if _, err := fmt.Fprintf(w, "%s: %s\n", model, v[model]); err != nil {
				return err
			}
		}
	case map[string][]dal.Car:
		for _, component := range slices.Sorted(maps.Keys(v)) {
			if _, err := fmt.Fprintf(w, "%s:\n", component); err != nil {
				return err
			}
			for _, car := range v[component] {
				if _, err := fmt.Fprintf(w, "  %s\n", car); err != nil {
					return err
				}
			}
		}
	case reporter:
		_, err := io.WriteString(w, v.Report())
		return err
	default:
		_, err := fmt.Fprintln(w, data)
		return err
	}
	return nil
}
