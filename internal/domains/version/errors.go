package version

import "errors"

var ErrVersionNotFound = errors.New("page version not found")
