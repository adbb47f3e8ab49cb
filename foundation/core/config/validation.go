// File: validation.go
// Title: Configuration Validation Implementation
// Description: Implements rule based validation of configuration values:
//              required keys, types, numeric bounds, allowed values and
//              patterns. Environment overrides are validated like file
//              values.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation of validation
// - 2026-10-14 v0.2.0: Allowed value lists, validation no longer mutates
//                       the configuration

package config

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	mserror "github.com/msto63/mscript/foundation/core/error"
)

// ValidationRule defines validation criteria for configuration values
type ValidationRule struct {
	Required bool     // Whether the key must be present
	Type     string   // "string", "int", "bool", "duration" or "[]string"
	Min      *int     // Minimum for ints
	Max      *int     // Maximum for ints
	OneOf    []string // Allowed values for strings, compared case-insensitively
	Pattern  string   // Regex pattern for strings
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err returns nil for a valid result and an INVALID_CONFIG error otherwise
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return mserror.New("invalid configuration: "+strings.Join(r.Errors, "; ")).
		WithCode(mserror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("errors", r.Errors).
		WithMessage(mserror.CodeInvalidConfig.MessageKey(), map[string]interface{}{
			"Reason": strings.Join(r.Errors, "; "),
		})
}

// IntPtr is a helper for ValidationRule bounds
func IntPtr(i int) *int {
	return &i
}

// Validate validates the configuration against the provided rules. Keys
// are checked in sorted order so the error list is stable.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := &ValidationResult{Valid: true}
	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}
	return result
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	value, ok := c.effective(key)
	if !ok {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	switch rule.Type {
	case "", "string":
		s, isString := value.(string)
		if rule.Type == "string" && !isString {
			return fmt.Errorf("field '%s' must be a string, got %T", key, value)
		}
		if isString {
			return validateString(key, s, rule)
		}

	case "int":
		i, ok := toInt(value)
		if !ok {
			return fmt.Errorf("field '%s' must be an integer, got '%v'", key, value)
		}
		if rule.Min != nil && i < *rule.Min {
			return fmt.Errorf("field '%s' value %d is less than minimum %d", key, i, *rule.Min)
		}
		if rule.Max != nil && i > *rule.Max {
			return fmt.Errorf("field '%s' value %d is greater than maximum %d", key, i, *rule.Max)
		}

	case "bool":
		if _, ok := toBool(value); !ok {
			return fmt.Errorf("field '%s' must be a boolean, got '%v'", key, value)
		}

	case "duration":
		if _, ok := toDuration(value); !ok {
			return fmt.Errorf("field '%s' must be a valid duration, got '%v'", key, value)
		}

	case "[]string":
		switch value.(type) {
		case []string, []interface{}, string:
		default:
			return fmt.Errorf("field '%s' must be a list of strings, got %T", key, value)
		}

	default:
		return fmt.Errorf("unknown validation type: %s", rule.Type)
	}

	return nil
}

func validateString(key, value string, rule ValidationRule) error {
	if len(rule.OneOf) > 0 {
		allowed := false
		for _, candidate := range rule.OneOf {
			if strings.EqualFold(candidate, value) {
				allowed = true
				break
			}
		}
		if !allowed {
			return fmt.Errorf("field '%s' value '%s' is not one of %s", key, value, strings.Join(rule.OneOf, ", "))
		}
	}

	if rule.Pattern != "" {
		regex, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return fmt.Errorf("invalid regex pattern for field '%s': %w", key, err)
		}
		if !regex.MatchString(value) {
			return fmt.Errorf("field '%s' value '%s' does not match pattern '%s'", key, value, rule.Pattern)
		}
	}

	return nil
}
