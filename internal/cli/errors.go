package cli

import "errors"

var (
	ErrConfigRequired     = errors.New("config or preset is required")
	ErrConfigAndPreset    = errors.New("config and preset are mutually exclusive")
	ErrSourceRequired     = errors.New("source is required")
	ErrUnknownOutput      = errors.New("unknown output format")
	ErrNegativeNumber     = errors.New("max-width, offset and limit must not be negative")
	ErrEmptyDataField     = errors.New("data-field must not be empty")
	ErrUnexpectedArgument = errors.New("unexpected argument")
)
