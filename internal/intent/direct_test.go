package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexicon_Direct(t *testing.T) {
	lex := DefaultLexicon()

	tests := []struct {
		name      string
		utterance string
		want      []Task
		ok        bool
	}{
		{"exit word", "Goodbye!", []Task{{KindExit, ""}}, true},
		{"send email prefix", "send email to a@b.com | subject Hi | body Hello", []Task{{KindSendEmail, "to a@b.com | subject Hi | body Hello"}}, true},
		{"email prefix", "email bob at gmail dot com about the trip", []Task{{KindSendEmail, "bob at gmail dot com about the trip"}}, true},
		{"generate image prefix", "generate image a castle at dusk", []Task{{KindGenerateImage, "a castle at dusk"}}, true},
		{"image keyword", "create a wallpaper of mountains", []Task{{KindGenerateImage, "mountains"}}, true},
		{"pure automation", "open notepad", []Task{{KindOpen, "notepad"}}, true},
		{"compound automation needs routing", "open notepad and play music", nil, false},
		{"question needs classifier", "who is the french president", nil, false},
		{"bare prefix needs classifier", "open", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := lex.Direct(tt.utterance)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImagePrompt(t *testing.T) {
	assert.Equal(t, "red fox in snow", ImagePrompt("please generate an image of a red fox in snow"))
	assert.Equal(t, "image", ImagePrompt("image"))
}
