package generic

import "errors"

// ErrNoLoader is returned by GetOrLoad on a miss when the cache has no loader.
var ErrNoLoader = errors.New("cache has no loader")
