package decimal

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var log atomic.Pointer[zap.Logger]

func init() {
	log.Store(zap.NewNop())
}

// SetLogger installs the logger that receives debug traces of rounding,
// overflow and underflow. A nil logger disables tracing.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}

	log.Store(l)
}

// Logger returns the installed logger.
func Logger() *zap.Logger {
	return log.Load()
}
