// Package commands provides CLI command implementations for the Stride notifier.
package commands

// Output format constants.
const (
	// OutputFormatJSON represents JSON output format.
	OutputFormatJSON = "json"
	// OutputFormatYAML represents YAML output format.
	OutputFormatYAML = "yaml"
)

// Flag names shared by commands.
const (
	flagOutput    = "output"
	flagCheckID   = "check-id"
	flagCheckName = "check-name"
	flagState     = "state"
	flagTarget    = "target"
	flagType      = "type"
	flagAddr      = "addr"
)
