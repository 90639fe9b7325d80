package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, false)

	l.Debugf("hidden %d\n", 1)
	l.Infof("shown %s\n", "info")
	l.Errorf("boom")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"message":"shown info"`)
	assert.Contains(t, out, `"level":"error"`)

	buf.Reset()
	NewLoggerTo(&buf, true).With("repo", "a/b").Debugf("visible")
	assert.Contains(t, buf.String(), `"repo":"a/b"`)
	assert.Contains(t, buf.String(), `"message":"visible"`)
}

func TestStats_Print(t *testing.T) {
	var s Stats
	s.Total.Add(5)
	s.NotFound.Add(1)
	s.Short.Add(3)
	s.Sufficient.Add(1)

	var buf bytes.Buffer
	s.Print(&buf)
	assert.Equal(t, "Total: 5\n404: 1\n200: 4\nShort: 3\nSufficient: 1\n", buf.String())
}

func TestAskUntil(t *testing.T) {
	p := NewLinePrompter(strings.NewReader("first line\n\nsecond\nEND\nafter\n"), nil)

	lines, err := AskUntil(p, "summary", "END", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"first line", "", "second"}, lines)

	p = NewLinePrompter(strings.NewReader("go\n\n  \nexit\n"), nil)
	topics, err := AskUntil(p, "topic", "exit", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, topics)
}

func TestAskUntil_StopMustMatchExactly(t *testing.T) {
	p := NewLinePrompter(strings.NewReader("END   \n end\nEND\n"), nil)

	lines, err := AskUntil(p, "summary", "END", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"END   ", " end"}, lines)
}

type interruptedPrompter struct{ answers []string }

func (p *interruptedPrompter) Ask(string) (string, error) {
	if len(p.answers) == 0 {
		return "", ErrInterrupted
	}
	v := p.answers[0]
	p.answers = p.answers[1:]
	return v, nil
}

func TestAskUntil_Interrupted(t *testing.T) {
	lines, err := AskUntil(&interruptedPrompter{answers: []string{"half"}}, "summary", "END", false)
	assert.ErrorIs(t, err, ErrInterrupted)
	assert.NotErrorIs(t, err, ErrInputClosed)
	assert.Equal(t, []string{"half"}, lines)
}

func TestAskUntil_ClosedInput(t *testing.T) {
	p := NewLinePrompter(strings.NewReader("only"), nil)

	lines, err := AskUntil(p, "summary", "END", false)
	assert.ErrorIs(t, err, ErrInputClosed)
	assert.Equal(t, []string{"only"}, lines)
}

func TestConfirm(t *testing.T) {
	assert.True(t, Confirm(NewLinePrompter(strings.NewReader("Yes\n"), nil), "ok?"))
	assert.False(t, Confirm(NewLinePrompter(strings.NewReader("\n"), nil), "ok?"))
}

func TestProgressHandle_NilSafe(t *testing.T) {
	var h *ProgressHandle
	assert.NotPanics(t, func() {
		h.SetTotal(3)
		h.Update(1, 3, 10)
		h.MarkDone()
	})
}

func TestProgressManager_Completes(t *testing.T) {
	pm := NewProgressManagerTo(io.Discard)
	h := pm.Register("page 1")
	h.Update(0, 2, 0)
	h.Update(2, 2, 2048)
	h.MarkDone()
	h.Update(1, 2, 0)

	done := make(chan struct{})
	go func() {
		pm.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("progress manager did not finish")
	}
}
