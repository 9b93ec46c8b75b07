package errors

import "fmt"

// ConfigError reports a parser configuration that cannot be used, either
// because Verify found an inconsistent descriptor table or because Parse was
// invoked again on an instance that was not Reset.
type ConfigError struct{ Msg string }

func (e ConfigError) Error() string { return e.Msg }

// InvalidOptionError indicates a command-line token did not match any
// registered option in the active group or the base group.
type InvalidOptionError struct{ Token string }

func (e InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid option: %s", e.Token)
}

// MissingValueError indicates an option that requires a value appeared as the
// last token with nothing left to consume.
type MissingValueError struct{ Option string }

func (e MissingValueError) Error() string {
	return fmt.Sprintf("missing required value for %s", e.Option)
}

// UnrecognizedArgError indicates a bare positional token with no catch-all
// descriptor registered on the active group.
type UnrecognizedArgError struct{ Token string }

func (e UnrecognizedArgError) Error() string {
	return fmt.Sprintf("unrecognised option: %s", e.Token)
}

// CallbackError wraps the non-nil error returned by the caller's callback.
// Option names the option being reported when the callback rejected it, or is
// empty for a sub-command selection.
type CallbackError struct {
	Option string
	Err    error
}

func (e CallbackError) Error() string {
	if e.Option != "" {
		return fmt.Sprintf("callback rejected %s: %v", e.Option, e.Err)
	}
	return fmt.Sprintf("callback failed: %v", e.Err)
}

func (e CallbackError) Unwrap() error { return e.Err }

// ArgFileError indicates an argument file could not be opened or read, or
// contained an entry that did not resolve to a registered option.
type ArgFileError struct {
	Path string
	Err  error
}

func (e ArgFileError) Error() string {
	return fmt.Sprintf("arguments file %q: %v", e.Path, e.Err)
}

func (e ArgFileError) Unwrap() error { return e.Err }

// Helper constructors
func NewConfig(msg string) error          { return ConfigError{Msg: msg} }
func NewInvalidOption(token string) error { return InvalidOptionError{Token: token} }
func NewMissingValue(option string) error { return MissingValueError{Option: option} }
func NewUnrecognized(token string) error  { return UnrecognizedArgError{Token: token} }
func NewCallback(option string, err error) error {
	return CallbackError{Option: option, Err: err}
}
func NewArgFile(path string, err error) error { return ArgFileError{Path: path, Err: err} }
