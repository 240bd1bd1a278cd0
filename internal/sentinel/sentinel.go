// Package sentinel provides standardized error definitions for the analyzer
// module. Centralizing them here keeps error handling and messaging
// consistent across the registry and serializer components.
//
// All errors are created using the ewrap package to provide enhanced error
// wrapping and context capabilities.
package sentinel

import (
	"github.com/hyp3rd/ewrap"
)

var (
	// ErrParamCannotBeEmpty is returned when a parameter cannot be empty.
	ErrParamCannotBeEmpty = ewrap.New("param cannot be empty")

	// ErrAnalyzerNotFound is returned when no analyzer is registered under the requested name.
	ErrAnalyzerNotFound = ewrap.New("analyzer not found")

	// ErrAnalyzerExists is returned when registering a name that is already taken.
	ErrAnalyzerExists = ewrap.New("analyzer already registered")

	// ErrNilAnalyzer is returned when a nil analyzer is passed to the registry.
	ErrNilAnalyzer = ewrap.New("nil analyzer")

	// ErrSerializerNotFound is returned when a serializer is not found.
	ErrSerializerNotFound = ewrap.New("serializer not found")
)
