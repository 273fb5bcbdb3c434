package inplace

import (
	"errors"
	"fmt"
)

// ErrPermutationSize is wrapped by every SizeError.
var ErrPermutationSize = errors.New("invalid permutation size")

// ComparisonError represents a panic raised by a CompareFunc while sorting concurrently
type ComparisonError struct {
	// Cause is the original panic or error that occurred during comparison
	Cause interface{}
	// Context provides additional information about when the comparison failed
	Context string
}

func (e *ComparisonError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("comparison panic in %s: %v", e.Context, e.Cause)
	}
	return fmt.Sprintf("comparison panic: %v", e.Cause)
}

func (e *ComparisonError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}

// NewComparisonError creates a ComparisonError
func NewComparisonError(cause interface{}, context string) error {
	return &ComparisonError{Cause: cause, Context: context}
}

// ConfigError represents an error in configuration parameters
type ConfigError struct {
	// Field is the name of the configuration field that's invalid
	Field string
	// Value is the invalid value provided
	Value interface{}
	// Reason explains why the value is invalid
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in field %s (value: %v): %s", e.Field, e.Value, e.Reason)
}

// NewConfigError creates a ConfigError
func NewConfigError(field string, value interface{}, reason string) error {
	return &ConfigError{Field: field, Value: value, Reason: reason}
}

// SizeError reports a permutation size whose index buffer cannot be allocated.
// It always unwraps to ErrPermutationSize.
type SizeError struct {
	// Size is the requested number of indices
	Size int
	// Reason explains why the size was rejected
	Reason string
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("permutation size %d: %s", e.Size, e.Reason)
}

func (e *SizeError) Unwrap() error {
	return ErrPermutationSize
}

// checkIndex panics unless 0 <= i <= n
func checkIndex(fn string, i, n int) {
	if i < 0 || i > n {
		panic(fmt.Sprintf("inplace: %s index %d out of range [0:%d]", fn, i, n))
	}
}
