package conversation

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"voice-assistant/internal/chatlog"
	"voice-assistant/internal/model"
	"voice-assistant/pkg/instant"
	"voice-assistant/pkg/llmprovider"
	pkgLog "voice-assistant/pkg/log"
	"voice-assistant/pkg/websearch"
)

type mockGenerator struct {
	text  string
	err   error
	calls []*llmprovider.Request
}

func (g *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	g.calls = append(g.calls, req)
	if g.err != nil {
		return nil, g.err
	}
	return &llmprovider.Response{Content: llmprovider.TextMessage(llmprovider.RoleAssistant, g.text)}, nil
}

func (g *mockGenerator) system() string {
	last := g.calls[len(g.calls)-1]
	return last.SystemInstruction.Text()
}

type mockSearcher struct {
	results []websearch.Result
	err     error
	queries []string
}

func (s *mockSearcher) Search(ctx context.Context, query string, n int) ([]websearch.Result, error) {
	s.queries = append(s.queries, query)
	return s.results, s.err
}

type mockLive struct {
	rates    *instant.Rates
	place    *instant.Place
	forecast *instant.Forecast
	err      error
}

func (m *mockLive) Rates(ctx context.Context, base string) (*instant.Rates, error) {
	return m.rates, m.err
}

func (m *mockLive) Geocode(ctx context.Context, place string) (*instant.Place, error) {
	return m.place, m.err
}

func (m *mockLive) Forecast(ctx context.Context, lat, lon float64) (*instant.Forecast, error) {
	return m.forecast, m.err
}

var fixedNow = time.Date(2024, 1, 1, 15, 4, 5, 0, time.UTC)

func newTestUseCase(t *testing.T, llm llmprovider.Generator, searcher websearch.ISearcher, live instant.IClient, history ...model.ChatEntry) *usecase {
	t.Helper()
	repo, err := chatlog.NewFileRepository(filepath.Join(t.TempDir(), "ChatLog.json"), pkgLog.NewNop())
	require.NoError(t, err)
	if len(history) > 0 {
		require.NoError(t, repo.Append(context.Background(), history...))
	}
	uc := New(Config{AssistantName: "Jarvis", Username: "Tony", Location: time.UTC}, llm, repo, searcher, live, pkgLog.NewNop()).(*usecase)
	uc.now = func() time.Time { return fixedNow }
	return uc
}
