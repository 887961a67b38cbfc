package channelflow

import "fmt"

// InvalidConfigurationError reports inputs rejected before assembly.
type InvalidConfigurationError struct {
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return "invalid configuration: " + e.Reason
}

func invalidConfigf(format string, args ...interface{}) error {
	return &InvalidConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// SingularSystemError reports a coefficient matrix that cannot be
// factorized, notably the free-slip/free-slip case where the solution is
// only determined up to an additive constant.
type SingularSystemError struct {
	Reason string
}

func (e *SingularSystemError) Error() string {
	return "singular system: " + e.Reason
}
