package dispatch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"voice-assistant/internal/automation"
	"voice-assistant/internal/email"
	"voice-assistant/internal/imagegen"
	"voice-assistant/internal/intent"
	"voice-assistant/internal/model"
	"voice-assistant/internal/reminder"
	pkgLog "voice-assistant/pkg/log"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type mockAutomation struct {
	mu     sync.Mutex
	calls  []string
	delays map[string]time.Duration
	panic  string
}

func (m *mockAutomation) record(kind, arg string) automation.Result {
	if d := m.delays[arg]; d > 0 {
		time.Sleep(d)
	}
	if arg == m.panic {
		panic("boom")
	}
	m.mu.Lock()
	m.calls = append(m.calls, kind+" "+arg)
	m.mu.Unlock()
	return automation.Result{OK: true, Message: kind + " " + arg + " done"}
}

func (m *mockAutomation) OpenApp(ctx context.Context, name string) automation.Result {
	return m.record("open", name)
}
func (m *mockAutomation) CloseApp(ctx context.Context, name string) automation.Result {
	return m.record("close", name)
}
func (m *mockAutomation) Play(ctx context.Context, q string) automation.Result {
	return m.record("play", q)
}
func (m *mockAutomation) System(ctx context.Context, c string) automation.Result {
	return m.record("system", c)
}
func (m *mockAutomation) WriteContent(ctx context.Context, topic string) automation.Result {
	return m.record("content", topic)
}
func (m *mockAutomation) GoogleSearch(ctx context.Context, topic string) automation.Result {
	return m.record("google search", topic)
}
func (m *mockAutomation) YouTubeSearch(ctx context.Context, topic string) automation.Result {
	return m.record("youtube search", topic)
}

type mockEmail struct {
	out   email.Outcome
	calls int
}

func (m *mockEmail) Send(ctx context.Context, instruction string) email.Outcome {
	m.calls++
	return m.out
}

type mockImages struct {
	err     error
	prompts []string
}

func (m *mockImages) Start(ctx context.Context, prompt string) (imagegen.JobID, error) {
	m.prompts = append(m.prompts, prompt)
	return "job-1", m.err
}
func (m *mockImages) Notifications() <-chan imagegen.Notification { return nil }
func (m *mockImages) Close()                                      {}

type mockReminders struct {
	res reminder.Result
}

func (m *mockReminders) Create(ctx context.Context, instruction string) reminder.Result {
	return m.res
}
func (m *mockReminders) Upcoming(ctx context.Context, within time.Duration) ([]reminder.Entry, error) {
	return nil, nil
}

type mockOutput struct {
	lines []string
}

func (o *mockOutput) Say(ctx context.Context, text string) {
	o.lines = append(o.lines, text)
}

var local = model.Scope{Channel: model.ChannelCLI, UserID: "me"}

func task(k intent.Kind, arg string) intent.Task {
	return intent.Task{Kind: k, Argument: arg}
}

func TestDispatchPreservesOrder(t *testing.T) {
	auto := &mockAutomation{delays: map[string]time.Duration{"chrome": 50 * time.Millisecond}}
	uc := New(Deps{Automation: auto}, Options{}, nil, nil, pkgLog.NewNop())

	out := uc.Dispatch(context.Background(), local, "open chrome, open youtube", []intent.Task{
		task(intent.KindOpen, "chrome"),
		task(intent.KindOpen, "youtube"),
	})

	require.Len(t, out.Results, 2)
	assert.Equal(t, "open chrome done", out.Results[0].Status)
	assert.Equal(t, "open youtube done", out.Results[1].Status)
	// Completion order differs from submission order.
	assert.Equal(t, []string{"open youtube", "open chrome"}, auto.calls)
	assert.Equal(t, []string{"open chrome: open chrome done", "open youtube: open youtube done"}, out.StatusLines())
	assert.Equal(t, 2, out.Executed())
	assert.False(t, out.Exit)
}

func TestDispatchExit(t *testing.T) {
	auto := &mockAutomation{}
	output := &mockOutput{}
	terminated := 0
	uc := New(Deps{Automation: auto}, Options{}, output, func() { terminated++ }, pkgLog.NewNop())

	out := uc.Dispatch(context.Background(), local, "open chrome and exit", []intent.Task{
		task(intent.KindOpen, "chrome"),
		task(intent.KindExit, ""),
		task(intent.KindGeneral, "how are you"),
	})

	assert.True(t, out.Exit)
	assert.Equal(t, []string{"Okay, bye!"}, output.lines)
	assert.Equal(t, 1, terminated)
	assert.Empty(t, auto.calls)
	assert.True(t, out.Results[0].Skipped)
	assert.False(t, out.Results[1].Skipped)
	assert.True(t, out.Results[2].Skipped)
	assert.Empty(t, out.Deferred())
	assert.Equal(t, []string{"exit: Okay, bye!"}, out.StatusLines())
}

func TestDispatchDefersConversational(t *testing.T) {
	auto := &mockAutomation{}
	uc := New(Deps{Automation: auto}, Options{}, nil, nil, pkgLog.NewNop())

	out := uc.Dispatch(context.Background(), local, "open notepad and tell me a joke", []intent.Task{
		task(intent.KindGeneral, "tell me a joke"),
		task(intent.KindOpen, "notepad"),
		task(intent.KindRealtime, "who won yesterday"),
	})

	assert.True(t, out.Results[0].Deferred)
	assert.False(t, out.Results[1].Deferred)
	assert.True(t, out.Results[2].Deferred)
	assert.Equal(t, []intent.Task{task(intent.KindGeneral, "tell me a joke"), task(intent.KindRealtime, "who won yesterday")}, out.Deferred())
	assert.Equal(t, 1, out.Executed())
}

func TestDispatchFamilies(t *testing.T) {
	mail := &mockEmail{out: email.Outcome{
		Message: "Email sent to a@b.com. Failed for c@d.com (could not be delivered).",
		Recipients: []email.RecipientResult{
			{Address: "a@b.com", OK: true},
			{Address: "c@d.com", Error: "could not be delivered"},
		},
	}}
	images := &mockImages{}
	reminders := &mockReminders{res: reminder.Result{OK: true, Message: "Reminder set."}}
	uc := New(Deps{Automation: &mockAutomation{}, Email: mail, Images: images, Reminders: reminders}, Options{}, nil, nil, pkgLog.NewNop())

	out := uc.Dispatch(context.Background(), local, "x", []intent.Task{
		task(intent.KindSendEmail, "to a@b.com and c@d.com about lunch"),
		task(intent.KindGenerateImage, "a red fox"),
		task(intent.KindReminder, "9pm call mom"),
		task(intent.KindSystem, "mute"),
	})

	require.Len(t, out.Results, 4)
	assert.Len(t, out.Results[0].Recipients, 2)
	assert.False(t, out.Results[0].OK)
	assert.Equal(t, 1, mail.calls)
	assert.True(t, out.Results[1].OK)
	assert.Equal(t, "Generating images for 'a red fox'.", out.Results[1].Status)
	assert.Equal(t, []string{"a red fox"}, images.prompts)
	assert.Equal(t, "Reminder set.", out.Results[2].Status)
	assert.Equal(t, "system mute done", out.Results[3].Status)
	assert.False(t, out.OnlyImages())
}

func TestDispatchFailuresStayLocal(t *testing.T) {
	auto := &mockAutomation{panic: "crashy"}
	images := &mockImages{err: errors.New("hf down")}
	uc := New(Deps{Automation: auto, Images: images}, Options{MaxParallel: 1}, nil, nil, pkgLog.NewNop())

	out := uc.Dispatch(context.Background(), local, "x", []intent.Task{
		task(intent.KindOpen, "crashy"),
		task(intent.KindGenerateImage, "cat"),
		task(intent.KindOpen, "chrome"),
		task(intent.KindSendEmail, "to a@b.com"),
		task(intent.KindUnknown, "??"),
	})

	assert.Equal(t, msgCrashed, out.Results[0].Status)
	assert.Equal(t, msgImageFailed, out.Results[1].Status)
	assert.True(t, out.Results[2].OK)
	assert.Equal(t, "Email is not available.", out.Results[3].Status)
	assert.Equal(t, msgUnsupported, out.Results[4].Status)
}

func TestOutcomeOnlyImages(t *testing.T) {
	uc := New(Deps{Images: &mockImages{}}, Options{}, nil, nil, pkgLog.NewNop())

	out := uc.Dispatch(context.Background(), local, "generate image of a cat", []intent.Task{task(intent.KindGenerateImage, "a cat")})
	assert.True(t, out.OnlyImages())

	empty := uc.Dispatch(context.Background(), local, "hi", []intent.Task{task(intent.KindGeneral, "hi")})
	assert.False(t, empty.OnlyImages())
	assert.Empty(t, empty.StatusLines())
}

func TestDispatchRemoteExitKeepsRunning(t *testing.T) {
	output := &mockOutput{}
	terminated := 0
	uc := New(Deps{}, Options{}, output, func() { terminated++ }, pkgLog.NewNop())

	for _, sc := range []model.Scope{
		{Channel: model.ChannelTelegram, UserID: "telegram_1", Trusted: true},
		{Channel: model.ChannelHTTP, UserID: "192.0.2.7"},
	} {
		out := uc.Dispatch(context.Background(), sc, "bye", []intent.Task{task(intent.KindExit, "")})
		assert.True(t, out.Exit, sc.Channel)
	}

	assert.Zero(t, terminated)
	assert.Equal(t, []string{"Okay, bye!", "Okay, bye!"}, output.lines)
}

func TestDispatchUntrustedSenderCannotAct(t *testing.T) {
	auto := &mockAutomation{}
	mail := &mockEmail{}
	images := &mockImages{}
	uc := New(Deps{Automation: auto, Email: mail, Images: images}, Options{}, nil, nil, pkgLog.NewNop())
	remote := model.Scope{Channel: model.ChannelTelegram, UserID: "telegram_9"}

	out := uc.Dispatch(context.Background(), remote, "x", []intent.Task{
		task(intent.KindOpen, "chrome"),
		task(intent.KindSendEmail, "to a@b.com about lunch"),
		task(intent.KindGenerateImage, "a cat"),
		task(intent.KindGeneral, "hello"),
	})

	assert.Empty(t, auto.calls)
	assert.Zero(t, mail.calls)
	assert.Empty(t, images.prompts)
	for _, r := range out.Results[:3] {
		assert.False(t, r.OK)
		assert.Equal(t, MsgNotPermitted, r.Status)
		assert.True(t, r.Refused)
	}
	assert.True(t, out.Results[3].Deferred)
	assert.Zero(t, out.Executed())
	assert.Equal(t, 3, out.Refused())
	assert.False(t, out.OnlyImages())

	remote.Trusted = true
	out = uc.Dispatch(context.Background(), remote, "x", []intent.Task{task(intent.KindOpen, "chrome")})
	assert.True(t, out.Results[0].OK)
	assert.Equal(t, []string{"open chrome"}, auto.calls)
}
