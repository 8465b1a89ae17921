package email

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEmails(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "plain", in: "send it to bob@example.com", want: []string{"bob@example.com"}},
		{name: "spoken", in: "john at example dot com", want: []string{"john@example.com"}},
		{name: "underscore", in: "mary underscore jane at mail dot org.", want: []string{"mary_jane@mail.org"}},
		{name: "brackets", in: "ops(at)corp[dot]io", want: []string{"ops@corp.io"}},
		{name: "dedupe keeps order", in: "b@x.com, a@x.com and b@x.com", want: []string{"b@x.com", "a@x.com"}},
		{name: "none", in: "nobody here", want: []string{}},
		{name: "empty", in: "  ", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractEmails(tt.in))
		})
	}
}

func TestClauses(t *testing.T) {
	in := "to a@b.com subject Quarterly review. about numbers for q3"
	assert.Equal(t, "Quarterly review", ExtractSubject(in))
	assert.Equal(t, "numbers for q3", ExtractAbout(in))
	assert.Equal(t, "", ExtractBody(in))
	assert.Equal(t, "Hello there", ExtractBody("subject hi body Hello there"))
	assert.Equal(t, "Hi", CleanSubject(" Hi?! "))
}

func TestParseCommand_Piped(t *testing.T) {
	cmd, err := ParseCommand("email to a@b.com | subject Hi | body Hello | cc c@d.com, e@f.com | bcc g@h.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"a@b.com"}, cmd.To)
	assert.Equal(t, "Hi", cmd.Subject)
	assert.Equal(t, "Hello", cmd.Body)
	assert.Equal(t, []string{"c@d.com", "e@f.com"}, cmd.Cc)
	assert.Equal(t, []string{"a@b.com", "c@d.com", "e@f.com", "g@h.com"}, cmd.Recipients())

	_, err = ParseCommand("email to a@b.com | body Hello")
	assert.ErrorIs(t, err, ErrMissingFields)
	assert.Equal(t, MsgUsage, err.Error())

	cmd, err = ParseCommand("send email to a@b.com | subject Hi")
	require.NoError(t, err)
	assert.Empty(t, cmd.Body)
}

func TestParseCommand_Free(t *testing.T) {
	cmd, err := ParseCommand("send email to john at example dot com about the launch meeting at noon")
	require.NoError(t, err)
	assert.Equal(t, []string{"john@example.com"}, cmd.To)
	assert.Equal(t, "The launch meeting at noon", cmd.Subject)
	assert.Equal(t, "the launch meeting at noon", cmd.About)

	_, err = ParseCommand("email my boss about the launch")
	assert.ErrorIs(t, err, ErrNoRecipient)

	_, err = ParseCommand("email a@b.com")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestStripPrefix(t *testing.T) {
	assert.Equal(t, "to a@b.com", StripPrefix("Send Email to a@b.com"))
	assert.Equal(t, "to a@b.com", StripPrefix("email to a@b.com"))
	assert.Equal(t, "", StripPrefix("email"))
	assert.Equal(t, "to a@b.com", StripPrefix("to a@b.com"))
}

func TestSubjectFromAbout(t *testing.T) {
	tests := map[string]struct {
		in, want string
	}{
		"ascii":     {in: "the launch meeting", want: "The launch meeting"},
		"multibyte": {in: "émile's birthday party", want: "Émile's birthday party"},
		"cyrillic":  {in: "встреча завтра", want: "Встреча завтра"},
		"empty":     {in: "  ", want: ""},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := subjectFromAbout(tt.in)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
