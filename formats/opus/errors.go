// SPDX-License-Identifier: EPL-2.0

package opus

import "errors"

var ErrNotOpus = errors.New("not an Ogg Opus stream")
