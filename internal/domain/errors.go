package domain

import "errors"

var ErrTranscriberUnavailable = errors.New("transcriber unavailable")
