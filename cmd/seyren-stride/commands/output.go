package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

// OutputFormatter handles output formatting for commands.
type OutputFormatter struct {
	format string
	out    io.Writer
}

// NewOutputFormatter creates a new output formatter writing to out.
func NewOutputFormatter(format string, out io.Writer) *OutputFormatter {
	return &OutputFormatter{
		format: format,
		out:    out,
	}
}

// Print formats and prints the data according to the specified format.
func (f *OutputFormatter) Print(data interface{}) error {
	// First convert to JSON so both formats share the json tags
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal to JSON: %w", err)
	}

	var generic interface{}
	if err := json.Unmarshal(jsonBytes, &generic); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	switch f.format {
	case OutputFormatJSON:
		encoder := json.NewEncoder(f.out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(generic)

	case OutputFormatYAML:
		yamlBytes, err := yaml.Marshal(generic)
		if err != nil {
			return fmt.Errorf("failed to marshal to YAML: %w", err)
		}
		_, err = f.out.Write(yamlBytes)
		return err

	default:
		return fmt.Errorf("unsupported output format: %s", f.format)
	}
}

// ValidateFormat checks if the output format is valid.
func ValidateFormat(format string) error {
	switch format {
	case OutputFormatJSON, OutputFormatYAML:
		return nil
	default:
		return fmt.Errorf("invalid output format: %s (supported: json, yaml)", format)
	}
}
