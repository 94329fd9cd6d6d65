package strategy

import "errors"

// ErrNilContext indicates that no assignment context was provided.
var ErrNilContext = errors.New("assignment context is required")
