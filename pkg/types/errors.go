// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import "fmt"

// ErrorKind classifies a failed operation.
type ErrorKind int

const (
	KindNotInitialized        ErrorKind = iota // No game directory set
	KindInvalidDirectory                       // Init target missing or not a directory
	KindPathNotFound                           // File missing under the root
	KindParseFailure                           // Parser rejected the file
	KindSymbolNotFound                         // No block matched the symbol name
	KindKeyPathNotFound                        // A key path segment is missing
	KindUnsupportedNavigation                  // Key path segment applied to a list
	KindUnknownGame                            // No directory knowledge for the game type
)

// String returns the name used when rendering the error to a caller.
func (k ErrorKind) String() string {
	switch k {
	case KindNotInitialized:
		return "NotInitialized"
	case KindInvalidDirectory:
		return "InvalidDirectory"
	case KindPathNotFound:
		return "PathNotFound"
	case KindParseFailure:
		return "ParseFailure"
	case KindSymbolNotFound:
		return "SymbolNotFound"
	case KindKeyPathNotFound:
		return "KeyPathNotFound"
	case KindUnsupportedNavigation:
		return "UnsupportedNavigation"
	case KindUnknownGame:
		return "UnknownGame"
	default:
		return "Unknown"
	}
}

// Error is the single error type returned across the tool boundary.
type Error struct {
	Kind   ErrorKind
	Detail string
	Err    error // Underlying cause, if any
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err,
// ErrSymbolNotFound) holds regardless of the detail text.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrNotInitialized        = &Error{Kind: KindNotInitialized}
	ErrInvalidDirectory      = &Error{Kind: KindInvalidDirectory}
	ErrPathNotFound          = &Error{Kind: KindPathNotFound}
	ErrParseFailure          = &Error{Kind: KindParseFailure}
	ErrSymbolNotFound        = &Error{Kind: KindSymbolNotFound}
	ErrKeyPathNotFound       = &Error{Kind: KindKeyPathNotFound}
	ErrUnsupportedNavigation = &Error{Kind: KindUnsupportedNavigation}
	ErrUnknownGame           = &Error{Kind: KindUnknownGame}
)

// Errorf builds an *Error of the given kind with a formatted detail.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// WrapError builds an *Error of the given kind around cause.
func WrapError(kind ErrorKind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...), Err: cause}
}
