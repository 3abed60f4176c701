// Package enum keeps a registry of string-backed enum values so api input
// can be converted to the typed value it names.
package enum

import (
	"fmt"
	"reflect"
)

var registry = map[reflect.Type]any{}

type valueSet[T comparable] map[string]T

// New registers value under its own string representation and returns it,
// so it can be used directly as the initializer of a package-level var.
func New[T comparable](value T) T {
	v := reflect.ValueOf(value)
	set, ok := registry[v.Type()].(valueSet[T])
	if !ok {
		set = valueSet[T]{}
		registry[v.Type()] = set
	}

	set[v.String()] = value
	return value
}

// ToEnum converts s to the registered value of type T with that string
// representation.
func ToEnum[T comparable](s string) (T, error) {
	var zero T
	set, ok := registry[reflect.TypeOf(zero)].(valueSet[T])
	if !ok {
		return zero, fmt.Errorf("no registered enum of type %T", zero)
	}

	value, ok := set[s]
	if !ok {
		return zero, fmt.Errorf("%s is not a value of enum %T", s, zero)
	}

	return value, nil
}
