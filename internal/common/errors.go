// Package common defines shared constants and sentinel errors used across
// bioadmin layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrorIncorrectInput flags operator input that could not be parsed.
	ErrorIncorrectInput = errors.New("incorrect input")
)
