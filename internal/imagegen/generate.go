package imagegen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	pkgLog "voice-assistant/pkg/log"
)

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9_\-]+`)

func (uc *usecase) Start(ctx context.Context, prompt string) (JobID, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", ErrEmptyPrompt
	}

	uc.mu.Lock()
	if uc.closed {
		uc.mu.Unlock()
		return "", ErrClosed
	}
	uc.wg.Add(1)
	uc.mu.Unlock()

	id := JobID(uuid.NewString())
	// The job outlives the turn, only the turn id is carried over for logging.
	jobCtx := pkgLog.WithTurn(uc.ctx, pkgLog.TurnID(ctx))
	uc.l.Infof(ctx, "%s: job %s started for %q", LogPrefixStart, id, prompt)

	go func() {
		defer uc.wg.Done()
		uc.publish(jobCtx, uc.run(jobCtx, id, prompt))
	}()
	return id, nil
}

func (uc *usecase) run(ctx context.Context, id JobID, prompt string) Notification {
	n := Notification{JobID: id, Prompt: prompt}

	images := make([][]byte, uc.opts.ImageCount)
	g, gctx := errgroup.WithContext(ctx)
	for i := range images {
		seed := uc.seed()
		full := prompt + fmt.Sprintf(promptSuffix, seed)
		g.Go(func() error {
			data, err := uc.gen.TextToImage(gctx, full, seed)
			if err != nil {
				return err
			}
			images[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "%s: job %s: %v", LogPrefixRun, id, err)
		n.Message = fmt.Sprintf(msgFailed, prompt)
		return n
	}

	if err := os.MkdirAll(uc.opts.DataDir, 0o755); err != nil {
		uc.l.Errorf(ctx, "%s: job %s: %v", LogPrefixRun, id, err)
		n.Message = fmt.Sprintf(msgFailed, prompt)
		return n
	}
	base := FileBase(prompt)
	for i, data := range images {
		path := filepath.Join(uc.opts.DataDir, fmt.Sprintf("%s%d.jpg", base, i+1))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			uc.l.Errorf(ctx, "%s: job %s: write %s: %v", LogPrefixRun, id, path, err)
			n.Message = fmt.Sprintf(msgFailed, prompt)
			return n
		}
		n.Files = append(n.Files, path)
	}

	if uc.opts.OpenResults && uc.opener != nil {
		for _, path := range n.Files {
			if err := uc.opener.OpenFile(ctx, path); err != nil {
				uc.l.Warnf(ctx, "%s: open %s: %v", LogPrefixRun, path, err)
			}
		}
	}

	n.OK = true
	n.Message = fmt.Sprintf(msgDone, prompt)
	return n
}

func (uc *usecase) publish(ctx context.Context, n Notification) {
	select {
	case uc.notifications <- n:
	default:
		uc.l.Warnf(ctx, "%s: notification for job %s dropped, nobody is listening", LogPrefixRun, n.JobID)
	}
	if uc.opts.OnDone != nil {
		uc.opts.OnDone(n)
	}
}

// FileBase is the file name stem for images of prompt: spaces become underscores.
func FileBase(prompt string) string {
	base := strings.ReplaceAll(strings.TrimSpace(prompt), " ", "_")
	base = unsafeFileChars.ReplaceAllString(base, "")
	if base == "" {
		return "image"
	}
	return base
}
