// SPDX-License-Identifier: EPL-2.0

package storymix

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/kalakriti/storymix/audio"
)

// background keeps the decoded, converted and attenuated track in memory.
// The file is stat'ed on every call: a removed file fails immediately and a
// replaced one (new size or mtime) is decoded again. Failures are never
// cached.
type background struct {
	path     string
	registry *audio.Registry
	prepare  func(*audio.Clip) (*audio.Clip, error)
	logger   *slog.Logger

	mtx     sync.Mutex
	size    int64
	modTime time.Time
	clip    *audio.Clip
}

func (b *background) get() (*audio.Clip, error) {
	fi, err := os.Stat(b.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackgroundMissing, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrBackgroundMissing, b.path)
	}

	b.mtx.Lock()
	defer b.mtx.Unlock()

	if b.clip != nil && b.size == fi.Size() && b.modTime.Equal(fi.ModTime()) {
		return b.clip, nil
	}
	b.clip = nil

	data, err := os.ReadFile(b.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackgroundMissing, err)
	}

	decoded, format, err := b.registry.Probe(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackgroundCorrupt, err)
	}

	clip, err := b.prepare(decoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackgroundCorrupt, err)
	}

	b.clip, b.size, b.modTime = clip, fi.Size(), fi.ModTime()
	b.logger.Info("background track loaded",
		slog.String("path", b.path),
		slog.String("format", format),
		slog.Duration("duration", clip.Duration()),
	)

	return clip, nil
}
