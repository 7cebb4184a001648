package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/aleister1102/pdfwatch/internal/common/errorwrapper"
	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
)

// CronParser is the schedule grammar accepted by the scheduler: five fields
// or a descriptor such as "@hourly" or "@every 30m".
var CronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// ValidateConfig performs validation on the GlobalConfig structure.
// Empty required settings are reported together as a MissingFieldsError.
func ValidateConfig(cfg *GlobalConfig) error {
	if cfg == nil {
		return errorwrapper.NewValidationError("config", nil, "configuration is nil")
	}

	validate := newValidator()

	if err := validate.Struct(cfg); err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			return fmt.Errorf("configuration validation error: %w", err)
		}

		var missing []string
		var messages []string
		for _, e := range errs {
			fieldName := trimRootNamespace(e.Namespace())
			if e.Tag() == "required" {
				missing = append(missing, fieldName)
				continue
			}
			msg := fmt.Sprintf("Validation failed for '%s': rule '%s'", fieldName, e.Tag())
			if e.Param() != "" {
				msg += fmt.Sprintf(" (expected: %s)", e.Param())
			}
			if e.Value() != nil && e.Value() != "" && !isSecretField(fieldName) {
				msg += fmt.Sprintf(", actual: '%v'", e.Value())
			}
			messages = append(messages, msg)
		}

		if len(missing) > 0 {
			return &errorwrapper.MissingFieldsError{Fields: missing}
		}
		return fmt.Errorf("%w:\n  %s", errorwrapper.ErrInvalidConfiguration, strings.Join(messages, "\n  "))
	}

	if _, err := cfg.SiteConfig.ResolvePageURL(); err != nil {
		return err
	}
	if _, err := cfg.SiteConfig.ResolveLoginURL(); err != nil {
		return err
	}

	if cfg.Mode == ModeAutomated && strings.TrimSpace(cfg.SchedulerConfig.Cron) == "" {
		return &errorwrapper.MissingFieldsError{Fields: []string{"scheduler_config.cron"}}
	}

	return nil
}

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their config file names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "trace", "debug", "info", "warn", "error", "fatal", "panic":
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "console", "text", "json":
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("mode", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case ModeOnetime, ModeAutomated:
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("cronexpr", func(fl validator.FieldLevel) bool {
		expr := strings.TrimSpace(fl.Field().String())
		if expr == "" {
			return true
		}
		_, err := CronParser.Parse(expr)
		return err == nil
	})

	return validate
}

// trimRootNamespace turns "GlobalConfig.site_config.base_url" into
// "site_config.base_url".
func trimRootNamespace(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func isSecretField(name string) bool {
	return strings.Contains(name, "password") || strings.Contains(name, "webhook")
}
