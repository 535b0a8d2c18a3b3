package cpu

import (
	"github.com/ezrec/vmma/io"
)

// Console is the terminal attached to the machine.
type Console io.Console
