package config

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/gradient/internal/domain/gradient"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	logLevels = map[string]struct{}{
		"trace": {}, "debug": {}, "info": {}, "warn": {}, "error": {}, "fatal": {}, "panic": {}, "disabled": {},
	}
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their YAML key.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("hex_colour", func(fl validator.FieldLevel) bool {
			return gradient.Colour(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("log_level", func(fl validator.FieldLevel) bool {
			level := strings.ToLower(fl.Field().String())
			if level == "" {
				return true
			}
			_, ok := logLevels[level]
			return ok
		})

		validateInst = v
	})

	return validateInst
}
