package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// ValidateConfig performs validation on the GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	validate := validator.New()

	// Register custom validation for log levels
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		levelStr := fl.Field().String()
		if levelStr == "" {
			return true // Optional field
		}
		_, err := zerolog.ParseLevel(strings.ToLower(levelStr))
		return err == nil
	})

	// Register custom validation for directory paths. Unlike the baked-in
	// rule it accepts paths that do not exist yet; missing directories are
	// created at startup, before validation runs.
	_ = validate.RegisterValidation("dirpath", func(fl validator.FieldLevel) bool {
		path := fl.Field().String()
		if path == "" {
			return true
		}
		if strings.ContainsRune(path, 0) {
			return false
		}
		if info, err := os.Stat(path); err == nil {
			return info.IsDir()
		}
		return true
	})

	// Register custom validation for log formats
	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		formatStr := strings.ToLower(fl.Field().String())
		switch formatStr {
		case "", "json", "console", "text":
			return true
		}
		return false
	})

	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// formatValidationErrors converts validator errors into a readable message
func formatValidationErrors(validationErrors validator.ValidationErrors) error {
	var messages []string
	for _, fieldErr := range validationErrors {
		messages = append(messages, fmt.Sprintf(
			"field '%s' failed validation '%s' (value: %v)",
			fieldErr.Namespace(), fieldErr.Tag(), fieldErr.Value(),
		))
	}
	return fmt.Errorf("config validation failed: %s", strings.Join(messages, "; "))
}
