package player

import "errors"

// ErrInvalidPlayer wraps every player validation failure
var ErrInvalidPlayer = errors.New("invalid player")
