package imagegen

import (
	"context"
	"math/rand/v2"
	"sync"

	"voice-assistant/pkg/huggingface"
	pkgLog "voice-assistant/pkg/log"
)

type usecase struct {
	opts   Options
	gen    huggingface.IImageGenerator
	opener Opener
	l      pkgLog.Logger
	seed   func() int64

	notifications chan Notification

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

// Ensure usecase implements UseCase interface
var _ UseCase = (*usecase)(nil)

// New creates the image service. opener may be nil.
func New(gen huggingface.IImageGenerator, opener Opener, l pkgLog.Logger, opts Options) UseCase {
	if opts.ImageCount <= 0 {
		opts.ImageCount = DefaultImageCount
	}
	if opts.DataDir == "" {
		opts.DataDir = DefaultDataDir
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &usecase{
		opts:          opts,
		gen:           gen,
		opener:        opener,
		l:             l,
		seed:          func() int64 { return rand.Int64N(maxSeed) + 1 },
		notifications: make(chan Notification, notificationBuf),
		ctx:           ctx,
		cancel:        cancel,
	}
}

func (uc *usecase) Notifications() <-chan Notification {
	return uc.notifications
}

func (uc *usecase) Close() {
	uc.mu.Lock()
	if uc.closed {
		uc.mu.Unlock()
		return
	}
	uc.closed = true
	uc.mu.Unlock()

	uc.cancel()
	uc.wg.Wait()
}
