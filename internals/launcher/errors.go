package launcher

import (
	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/pkg/errors"
)

var (
	// ErrRuntimeNotFound is returned by New if no java runtime was found
	ErrRuntimeNotFound = errors.New("java runtime not found")
	// ErrVersionNotFound is returned if the version manager does not know the version
	ErrVersionNotFound = minecraft.ErrVersionNotFound
	// ErrVersionUnreadable is returned if the version exists but its manifest can not be used
	ErrVersionUnreadable = errors.New("version manifest could not be read")
	// ErrNativeResolution is returned if the native libraries of a version can not be determined
	ErrNativeResolution = errors.New("could not resolve native libraries")
	// ErrTemplateExpansion is returned if an argument template of the version is malformed
	ErrTemplateExpansion = errors.New("could not expand launch arguments")
	// ErrExtraction is returned if writing native libraries failed
	ErrExtraction = errors.New("could not extract native libraries")
	// ErrSpawn is returned if java could not be started
	ErrSpawn = errors.New("could not start java")
)

// Error is returned by every failing launch step.
// Kind is one of the Err* values of this package, Err the underlying cause
type Error struct {
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil || e.Err == e.Kind {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Err.Error()
}

// Unwrap returns the cause
func (e *Error) Unwrap() error { return e.Err }

// Is makes errors.Is match the kind
func (e *Error) Is(target error) bool { return target == e.Kind }

func newError(kind error, err error) *Error {
	return &Error{Kind: kind, Err: err}
}
