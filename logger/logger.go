package logger

import (
	"log"
	"os"
)

// WarningLogger emits a warning for each non fatal error, like malformed or
// unsupported CSS declarations, which are dropped rather than propagated.
var WarningLogger = log.New(os.Stdout, "flowrender.warning: ", log.Lmsgprefix)
