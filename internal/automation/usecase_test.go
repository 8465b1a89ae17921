package automation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-assistant/pkg/launcher"
	"voice-assistant/pkg/llmprovider"
	pkgLog "voice-assistant/pkg/log"
)

type mockLauncher struct {
	mu        sync.Mutex
	installed map[string]bool
	running   map[string]bool
	urls      []string
	files     []string
	actions   []launcher.Action
	urlErr    error
}

func (m *mockLauncher) OpenURL(ctx context.Context, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.urls = append(m.urls, url)
	return m.urlErr
}

func (m *mockLauncher) OpenFile(ctx context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files = append(m.files, path)
	return nil
}

func (m *mockLauncher) StartApp(ctx context.Context, name string) error {
	if m.installed[name] {
		return nil
	}
	return launcher.ErrAppNotFound
}

func (m *mockLauncher) StopApp(ctx context.Context, name string) error {
	if m.running[name] {
		return nil
	}
	return launcher.ErrNotRunning
}

func (m *mockLauncher) System(ctx context.Context, action launcher.Action) error {
	m.actions = append(m.actions, action)
	return nil
}

type mockGenerator struct {
	text string
	err  error
	req  *llmprovider.Request
}

func (g *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	g.req = req
	if g.err != nil {
		return nil, g.err
	}
	return &llmprovider.Response{Content: llmprovider.TextMessage(llmprovider.RoleAssistant, g.text)}, nil
}

func newTestUseCase(t *testing.T, lch launcher.Launcher, gen llmprovider.Generator) (UseCase, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "Data")
	return New(Config{DataDir: dir, Username: "Tony"}, lch, gen, pkgLog.NewNop()), dir
}

func TestOpenApp(t *testing.T) {
	ctx := context.Background()

	t.Run("installed app", func(t *testing.T) {
		lch := &mockLauncher{installed: map[string]bool{"notepad": true}}
		uc, _ := newTestUseCase(t, lch, nil)
		res := uc.OpenApp(ctx, "notepad")
		assert.True(t, res.OK)
		assert.Equal(t, "Opened notepad.", res.Message)
		assert.Empty(t, lch.urls)
	})

	t.Run("known website", func(t *testing.T) {
		lch := &mockLauncher{}
		uc, _ := newTestUseCase(t, lch, nil)
		res := uc.OpenApp(ctx, "YouTube")
		assert.True(t, res.OK)
		assert.Equal(t, []string{"https://www.youtube.com"}, lch.urls)
	})

	t.Run("missing app", func(t *testing.T) {
		lch := &mockLauncher{}
		uc, _ := newTestUseCase(t, lch, nil)
		res := uc.OpenApp(ctx, "photoshop")
		assert.False(t, res.OK)
		assert.Equal(t, "App 'photoshop' is not available on this system.", res.Message)
		assert.Equal(t, []string{"https://photoshop.com"}, lch.urls)
	})

	t.Run("open it is ignored", func(t *testing.T) {
		uc, _ := newTestUseCase(t, &mockLauncher{}, nil)
		assert.False(t, uc.OpenApp(ctx, "it").OK)
	})
}

func TestCloseApp(t *testing.T) {
	ctx := context.Background()
	lch := &mockLauncher{running: map[string]bool{"notepad": true}}
	uc, _ := newTestUseCase(t, lch, nil)

	assert.Equal(t, Result{OK: true, Message: "Closed notepad."}, uc.CloseApp(ctx, "notepad"))
	assert.Equal(t, Result{OK: true, Message: "Left chrome open."}, uc.CloseApp(ctx, "chrome"))
	assert.False(t, uc.CloseApp(ctx, "spotify").OK)
}

func TestPlayAndSearch(t *testing.T) {
	ctx := context.Background()
	lch := &mockLauncher{}
	uc, _ := newTestUseCase(t, lch, nil)

	assert.True(t, uc.Play(ctx, "shape of you").OK)
	assert.True(t, uc.GoogleSearch(ctx, "golang generics").OK)
	assert.True(t, uc.YouTubeSearch(ctx, "lofi").OK)
	assert.Equal(t, []string{
		"https://www.youtube.com/results?search_query=shape+of+you",
		"https://www.google.com/search?q=golang+generics",
		"https://www.youtube.com/results?search_query=lofi",
	}, lch.urls)

	lch.urlErr = errors.New("no display")
	assert.False(t, uc.GoogleSearch(ctx, "x").OK)
	assert.False(t, uc.Play(ctx, " ").OK)
}

func TestSystem(t *testing.T) {
	ctx := context.Background()
	lch := &mockLauncher{}
	uc, _ := newTestUseCase(t, lch, nil)

	assert.True(t, uc.System(ctx, "Volume  Up").OK)
	assert.True(t, uc.System(ctx, "mute").OK)
	assert.False(t, uc.System(ctx, "shutdown").OK)
	assert.Equal(t, []launcher.Action{launcher.ActionVolumeUp, launcher.ActionMute}, lch.actions)
}

func TestWriteContent(t *testing.T) {
	ctx := context.Background()

	t.Run("writes file and opens it", func(t *testing.T) {
		lch := &mockLauncher{}
		gen := &mockGenerator{text: "Dear Sir,\nI am sick.</s>"}
		uc, dir := newTestUseCase(t, lch, gen)

		res := uc.WriteContent(ctx, "Application for sick leave")
		require.True(t, res.OK, res.Message)

		path := filepath.Join(dir, "applicationforsickleave.txt")
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Dear Sir,\nI am sick.", string(data))
		assert.Equal(t, []string{path}, lch.files)
		assert.Contains(t, gen.req.SystemInstruction.Text(), "Tony")
	})

	t.Run("generator failure", func(t *testing.T) {
		uc, _ := newTestUseCase(t, &mockLauncher{}, &mockGenerator{err: errors.New("down")})
		res := uc.WriteContent(ctx, "poem")
		assert.False(t, res.OK)
		assert.Equal(t, "I couldn't write content about poem right now.", res.Message)
	})

	t.Run("no generator", func(t *testing.T) {
		uc, _ := newTestUseCase(t, &mockLauncher{}, nil)
		assert.False(t, uc.WriteContent(ctx, "poem").OK)
	})
}

func TestContentFileName(t *testing.T) {
	assert.Equal(t, "poemaboutrain.txt", contentFileName("Poem about Rain"))
	assert.Equal(t, "etcpasswd.txt", contentFileName("../etc/passwd"))
	assert.Equal(t, "content.txt", contentFileName("   "))
}
