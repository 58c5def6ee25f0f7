package config

import (
	"fmt"
	"strings"

	"supocr/internal/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := ValidateLanguage(c.Tesseract.Language); err != nil {
		return fmt.Errorf("tesseract.language: %w", err)
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

// ValidateLanguage checks a Tesseract language specification such as
// "eng", "eng+deu", or "chi_sim". Each model name must start with a
// three-letter ISO 639-2 code.
func ValidateLanguage(spec string) error {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return fmt.Errorf("must not be empty")
	}
	for _, model := range strings.Split(spec, "+") {
		model = strings.TrimSpace(model)
		if model == "" {
			return fmt.Errorf("empty model in %q", spec)
		}
		if strings.ContainsAny(model, `/\`) && !strings.HasPrefix(model, "script/") {
			return fmt.Errorf("invalid model name %q", model)
		}
		if language.IsSpecialModel(model) {
			continue
		}
		base, _, _ := strings.Cut(model, "_")
		if !isISO3(base) {
			if suggestion := language.ToModel(model); suggestion != "" {
				return fmt.Errorf("%q is not a Tesseract model name, try %q", model, suggestion)
			}
			return fmt.Errorf("invalid language code %q", model)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}

func isISO3(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
