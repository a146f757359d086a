package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	ccerrors "github.com/ccinit-cli/ccinit/internal/errors"
)

var validate10 = validator.New(validator.WithRequiredStructEnabled())

// validate applies struct-tag validation and the variant-specific rules
// the tags cannot express.
func validate(cfg *Config) error {
	for i := range cfg.Steps {
		step := &cfg.Steps[i]
		if err := validate10.Struct(step); err != nil {
			return stepError(i, err)
		}
		switch step.Kind {
		case Confirmation:
			if step.Name == "" {
				return ccerrors.NewConfigError(
					fmt.Sprintf("steps[%d]: 'name' must not be empty", i))
			}
			if len(step.Options) > 0 {
				return ccerrors.NewConfigError(
					fmt.Sprintf("steps[%d]: 'options' is only valid on selection steps", i))
			}
		case Selection:
			if step.Selection == "" {
				return ccerrors.NewConfigError(
					fmt.Sprintf("steps[%d]: 'selection' must not be empty", i))
			}
			if step.Default != "" {
				return ccerrors.NewConfigError(
					fmt.Sprintf("steps[%d]: 'default' is only valid on confirmation steps", i),
					"Set per-option defaults with options[].default instead")
			}
		}
	}
	return nil
}

// stepError converts validator output into a config error naming the
// offending step and field.
func stepError(index int, err error) error {
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		ve := verrs[0]
		switch ve.Tag() {
		case "required":
			return ccerrors.NewConfigError(
				fmt.Sprintf("steps[%d]: missing required field '%s'", index, fieldName(ve)))
		case "oneof":
			return ccerrors.NewConfigError(
				fmt.Sprintf("steps[%d]: field '%s' must be one of y, Y, n, N", index, fieldName(ve)))
		}
		return ccerrors.NewConfigError(
			fmt.Sprintf("steps[%d]: field '%s' is invalid", index, fieldName(ve)))
	}
	return ccerrors.Wrap(err, ccerrors.Configuration, fmt.Sprintf("steps[%d]", index))
}

func fieldName(ve validator.FieldError) string {
	switch ve.Field() {
	case "Name":
		return "name"
	case "Command":
		return "command"
	case "Default":
		return "default"
	}
	return ve.Field()
}
