package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexicon_Match(t *testing.T) {
	lex := DefaultLexicon()

	tests := []struct {
		name    string
		segment string
		want    Task
		ok      bool
	}{
		{"single prefix", "open chrome", Task{Kind: KindOpen, Argument: "chrome"}, true},
		{"argument verbatim", "general What's The Time?", Task{Kind: KindGeneral, Argument: "What's The Time?"}, true},
		{"surrounding whitespace", "   play   shape of you  ", Task{Kind: KindPlay, Argument: "shape of you"}, true},
		{"case insensitive prefix", "Google Search golang", Task{Kind: KindGoogleSearch, Argument: "golang"}, true},
		{"bare exit", "exit", Task{Kind: KindExit}, true},
		{"close is not content", "content leave letter", Task{Kind: KindContent, Argument: "leave letter"}, true},
		{"generate image is not general", "generate image a fox", Task{Kind: KindGenerateImage, Argument: "a fox"}, true},
		{"prefix must end at a space", "opener thing", Task{}, false},
		{"bare search is unknown", "search cats", Task{}, false},
		{"empty", "", Task{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := lex.Match(tt.segment)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLexicon_SinglePrefixPreservesArgument(t *testing.T) {
	lex := DefaultLexicon()
	args := []string{"chrome", "Shape Of You", "what is 2+2?", "a b  c", "néon lights"}

	for _, prefix := range lex.Prefixes() {
		if prefix == "exit" {
			continue
		}
		for _, arg := range args {
			tasks := lex.Parse(prefix + " " + arg)
			require.Len(t, tasks, 1, "prefix %q arg %q", prefix, arg)
			assert.Equal(t, prefix, tasks[0].Kind.String())
			assert.Equal(t, arg, tasks[0].Argument)
		}
	}
}

func TestNewLexicon(t *testing.T) {
	t.Run("subset always has general", func(t *testing.T) {
		lex, err := NewLexicon([]string{"open", "exit"})
		require.NoError(t, err)
		assert.True(t, lex.Has(KindGeneral))
		assert.True(t, lex.Has(KindOpen))
		assert.False(t, lex.Has(KindPlay))

		_, ok := lex.Match("play music")
		assert.False(t, ok)
	})

	t.Run("unknown prefix", func(t *testing.T) {
		_, err := NewLexicon([]string{"teleport"})
		assert.ErrorIs(t, err, ErrUnknownPrefix)
	})

	t.Run("longest first", func(t *testing.T) {
		prefixes := DefaultLexicon().Prefixes()
		for i := 1; i < len(prefixes); i++ {
			assert.GreaterOrEqual(t, len(prefixes[i-1]), len(prefixes[i]))
		}
	})
}

func TestKind_Family(t *testing.T) {
	assert.Equal(t, FamilyAutomation, KindYouTubeSearch.Family())
	assert.Equal(t, FamilyImage, KindGenerateImage.Family())
	assert.Equal(t, FamilyEmail, KindSendEmail.Family())
	assert.Equal(t, FamilyConversational, KindRealtime.Family())
	assert.Equal(t, FamilyExit, KindExit.Family())
	assert.Equal(t, FamilyReminder, KindReminder.Family())
	assert.Equal(t, "send email to a@b.com", Task{Kind: KindSendEmail, Argument: "to a@b.com"}.String())
	assert.Equal(t, "exit", Task{Kind: KindExit}.String())
}
