package render

import "errors"

// errTooDeep is reported when recursion exceeds the configured depth bound.
var errTooDeep = errors.New("component tree exceeds maximum render depth")
