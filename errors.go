package phpdate

import "errors"

var (
	ErrInvalidInstant    = errors.New("phpdate: value cannot be interpreted as an instant")
	ErrUnknownTimezone   = errors.New("phpdate: unknown timezone identifier")
	ErrUnknownLocale     = errors.New("phpdate: unknown or unsupported locale")
	ErrInvalidLocaleFile = errors.New("phpdate: invalid locale file")
)
