// Package yamlutil decodes term2html configuration files. It wraps the
// YAML library behind a single strict entry point so config callers never
// import the dependency directly, and so a misspelled key in a config file
// fails loudly instead of being silently dropped.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxConfigSize caps config input at 1 MiB. Real config files are a few
// hundred bytes; anything larger is a wrong file passed by mistake.
const MaxConfigSize = 1 << 20

var (
	ErrNoData         = errors.New("yamlutil: no data")
	ErrNilDestination = errors.New("yamlutil: nil destination")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

// DecodeStrict unmarshals YAML config data into dst, rejecting unknown
// fields and oversized input.
func DecodeStrict(data []byte, dst any) error {
	if len(data) == 0 {
		return ErrNoData
	}
	if len(data) > MaxConfigSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxConfigSize)
	}
	if dst == nil {
		return ErrNilDestination
	}

	if err := yaml.UnmarshalWithOptions(data, dst, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}
