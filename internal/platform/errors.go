package platform

import "errors"

var errNoWindow = errors.New("platform: no window handle")
