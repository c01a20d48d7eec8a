package notes

import "fmt"

// ConfigError reports an unusable notes directory: the configured root is
// missing or is not a directory. IndexAll aborts on it before touching any
// file, so a ConfigError always means zero writes happened.
type ConfigError struct {
	Dir    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("notes directory %s: %s", e.Dir, e.Reason)
}

// WalkError reports a failure enumerating the directory tree itself, as
// opposed to a single unreadable file. It terminates the whole run.
type WalkError struct {
	Dir string
	Err error
}

func (e *WalkError) Error() string {
	return fmt.Sprintf("walking notes directory %s: %v", e.Dir, e.Err)
}

func (e *WalkError) Unwrap() error { return e.Err }
