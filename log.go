package glassfx

import (
	"glassfx/misc"
)

var (
	ErrLogger  = misc.ErrLogger
	WarnLogger = misc.WarnLogger
	InfoLogger = misc.InfoLogger
)
