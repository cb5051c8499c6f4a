package diff

import "errors"

// ErrUnknownMode is returned by ParseMode for an unrecognized mode name.
var ErrUnknownMode = errors.New("unknown diff mode")
