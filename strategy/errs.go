package strategy

import "errors"

// ErrUnsupportedStrategy is returned for a strategy which cannot be
// applied: an unknown kind, or a custom strategy without a callback.
var ErrUnsupportedStrategy = errors.New("unsupported strategy")
