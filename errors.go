// SPDX-License-Identifier: EPL-2.0

package storymix

import (
	"errors"
	"fmt"

	"github.com/kalakriti/storymix/audio"
)

var (
	ErrBackgroundMissing = errors.New("background track missing")
	ErrBackgroundCorrupt = errors.New("background track cannot be decoded")

	// ErrEncoderUnavailable is what encoders wrap when their toolchain is
	// not installed.
	ErrEncoderUnavailable = audio.ErrEncoderUnavailable
)

// InputError means the voice recording could not be decoded as any
// candidate format. The caller can fix it by re-recording or re-exporting.
type InputError struct {
	Err error
}

func (e *InputError) Error() string { return e.Err.Error() }
func (e *InputError) Unwrap() error { return e.Err }

// EnvironmentError means the deployment is broken: the background track is
// missing or corrupt, or an external tool is not installed.
type EnvironmentError struct {
	Op  string
	Err error
}

func (e *EnvironmentError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *EnvironmentError) Unwrap() error { return e.Err }

// ProcessingError covers every other failure while mixing or encoding,
// including recovered panics.
type ProcessingError struct {
	Op  string
	Err error
}

func (e *ProcessingError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *ProcessingError) Unwrap() error { return e.Err }

func IsInputError(err error) bool {
	var target *InputError
	return errors.As(err, &target)
}

func IsEnvironmentError(err error) bool {
	var target *EnvironmentError
	return errors.As(err, &target)
}

func IsProcessingError(err error) bool {
	var target *ProcessingError
	return errors.As(err, &target)
}
