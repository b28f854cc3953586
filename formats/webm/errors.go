// SPDX-License-Identifier: EPL-2.0

package webm

import "errors"

var ErrNotWebM = errors.New("not a WebM/Matroska stream")
