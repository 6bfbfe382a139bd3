package model

import "errors"

// ErrBadReminderOffset is returned for reminder offset codes that are not
// of the form <digits><m|h|d>.
var ErrBadReminderOffset = errors.New("malformed reminder offset code")
