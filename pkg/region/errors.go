package region

import "errors"

var ErrUnknownRegion = errors.New("unknown region")
