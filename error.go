// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pseq

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	// ErrCreationFailed is returned when a sequence cannot be constructed:
	// the target variant cannot be inferred, or the result would exceed the
	// capacity limit. Test with errors.Is.
	ErrCreationFailed = errors.New("pseq: creation failed")

	// ErrInvalidArgument is returned for malformed constructor or
	// configuration input, such as a non-positive chunk size.
	ErrInvalidArgument = errors.New("pseq: invalid argument")
)

// creationFailed records the failure and wraps ErrCreationFailed.
func creationFailed(format string, args ...any) error {
	stats.failures.Add(1)
	err := errors.Wrapf(ErrCreationFailed, format, args...)
	logger().Warn("sequence creation failed", zap.Error(err))
	return err
}

func invalidArgument(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}
