// Package yamlutil parses the YAML configuration files used by the md2rtf
// CLI. It wraps the YAML dependency in one place so the underlying parser
// can be swapped without touching the config package.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxConfigSize caps config input at 256 KB. A real config file is a few
// hundred bytes; anything larger is a wrong file passed by mistake.
const MaxConfigSize = 256 << 10

var (
	ErrEmptyInput    = errors.New("yamlutil: empty config data")
	ErrNilTarget     = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge = errors.New("yamlutil: config exceeds maximum size")
)

// UnmarshalStrict parses YAML config data into v, rejecting unknown fields
// so a typo in a config key surfaces as an error instead of being silently
// ignored.
func UnmarshalStrict(data []byte, v any) error {
	if len(data) == 0 {
		return ErrEmptyInput
	}
	if len(data) > MaxConfigSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxConfigSize)
	}
	if v == nil {
		return ErrNilTarget
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}
