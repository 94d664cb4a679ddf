// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pseq

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	nopLogger = zap.NewNop()
	log       atomic.Pointer[zap.Logger]
)

// SetLogger routes pseq diagnostics to l: growth events at debug level,
// creation failures at warn level. A nil l silences them again.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = nopLogger
	}
	log.Store(l.Named("pseq"))
}

func logger() *zap.Logger {
	if l := log.Load(); l != nil {
		return l
	}
	return nopLogger
}
