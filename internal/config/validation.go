package config

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	trackCodePattern = regexp.MustCompile(`^[A-Z]{2,3}$`)
	tableNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]{0,62}$`)
)

// CustomValidator wraps the validator with custom validation rules
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new validator with custom validation functions
func NewValidator() *CustomValidator {
	v := validator.New()

	v.RegisterValidation("environment", validateEnvironment)
	v.RegisterValidation("loglevel", validateLogLevel)
	v.RegisterValidation("trackcode", validateTrackCode)
	v.RegisterValidation("tablename", validateTableName)
	v.RegisterValidation("model", validateModel)

	return &CustomValidator{validator: v}
}

// Validate validates the entire configuration
func Validate(cfg *Config) error {
	return NewValidator().Validate(cfg)
}

// Validate validates the configuration using registered validation rules
func (cv *CustomValidator) Validate(cfg *Config) error {
	if err := cv.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	return validateCrossField(cfg)
}

// ValidateModel checks a model name given on the command line.
func (cv *CustomValidator) ValidateModel(model string) error {
	if err := cv.validator.Var(model, "required,model"); err != nil {
		return fmt.Errorf("model %q must be one of: shakeup, brohamer", model)
	}
	return nil
}

func validateEnvironment(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "development", "staging", "production":
		return true
	default:
		return false
	}
}

func validateLogLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

func validateTrackCode(fl validator.FieldLevel) bool {
	return trackCodePattern.MatchString(fl.Field().String())
}

// validateTableName keeps table names safe to interpolate into SQL.
func validateTableName(fl validator.FieldLevel) bool {
	return IsTableName(fl.Field().String())
}

func validateModel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "shakeup", "brohamer":
		return true
	default:
		return false
	}
}

// IsTableName reports whether name is a plain lower-case SQL identifier.
func IsTableName(name string) bool {
	return tableNamePattern.MatchString(name)
}

// validateCrossField performs cross-field validations
func validateCrossField(cfg *Config) error {
	if cfg.Persistence.Enabled {
		if cfg.Database.Host == "" || cfg.Database.Name == "" || cfg.Database.User == "" {
			return fmt.Errorf("persistence requires database host, name and user")
		}
		if cfg.Persistence.ShakeUpTable == "" || cfg.Persistence.BrohamerTable == "" {
			return fmt.Errorf("persistence requires shakeup_table and brohamer_table")
		}
		if cfg.Persistence.ShakeUpTable == cfg.Persistence.BrohamerTable {
			return fmt.Errorf("shakeup_table and brohamer_table must differ")
		}
	}

	if cfg.Metrics.Enabled && cfg.Metrics.TextfilePath == "" {
		return fmt.Errorf("metrics require textfile_path")
	}

	if cfg.Secrets.Enabled && (cfg.Secrets.Region == "" || cfg.Secrets.SecretName == "") {
		return fmt.Errorf("secrets overlay requires region and secret_name")
	}

	if cfg.IsProduction() && cfg.Persistence.Enabled && cfg.Database.SSLMode == "disable" {
		return fmt.Errorf("production environment requires SSL mode to be 'require' or 'verify-full'")
	}

	return nil
}

// formatValidationErrors formats validation errors into a readable string
func formatValidationErrors(validationErrors validator.ValidationErrors) error {
	var errMsg string
	for _, fieldError := range validationErrors {
		field := fieldError.StructField()
		tag := fieldError.Tag()
		value := fieldError.Value()

		switch tag {
		case "required":
			errMsg += fmt.Sprintf("- Field '%s' is required\n", field)
		case "min", "max":
			errMsg += fmt.Sprintf("- Field '%s' validation failed: %s constraint violated\n", field, tag)
		case "gt", "gte", "lt", "lte":
			errMsg += fmt.Sprintf("- Field '%s' validation failed: numeric constraint %s violated\n", field, tag)
		case "environment":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: development, staging, production\n", field)
		case "loglevel":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: debug, info, warn, error\n", field)
		case "trackcode":
			errMsg += fmt.Sprintf("- Field '%s' must be a two or three letter track code, got '%v'\n", field, value)
		case "tablename":
			errMsg += fmt.Sprintf("- Field '%s' must be a lower-case SQL identifier, got '%v'\n", field, value)
		case "oneof":
			errMsg += fmt.Sprintf("- Field '%s' has invalid value '%v'\n", field, value)
		default:
			errMsg += fmt.Sprintf("- Field '%s' failed validation: %s\n", field, tag)
		}
	}
	return fmt.Errorf("configuration validation failed:\n%s", errMsg)
}
