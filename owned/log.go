package owned

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var leakLogger atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	leakLogger.Store(&nop)
}

// SetLogger installs the logger used to report handles that were garbage
// collected while still owning a value. The default discards everything.
// Safe to call from multiple goroutines.
func SetLogger(l zerolog.Logger) {
	leakLogger.Store(&l)
}

// leak describes an owning handle for the leak report.
type leak struct {
	kind     string
	typeName string
}

func reportLeak(l leak) {
	logger := leakLogger.Load()
	logger.Warn().
		Str("kind", l.kind).
		Str("type", l.typeName).
		Msg("owned: handle collected without Close or Release")
}
