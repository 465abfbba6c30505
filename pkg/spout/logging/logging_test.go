package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWritesThroughSlog(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	l.With("component", "loader").Debug(context.Background(), "library loaded", "path", "SpoutLibrary.dll")

	out := buf.String()
	assert.Contains(t, out, "library loaded")
	assert.Contains(t, out, "component=loader")
	assert.Contains(t, out, "path=SpoutLibrary.dll")
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error(context.Background(), "dropped")
	assert.NotNil(t, l.With("k", "v"))
}

func TestHandle(t *testing.T) {
	v := new(int)
	a := Handle("handle", v)
	assert.Equal(t, "handle", a.Key)
	assert.Regexp(t, `^0x[0-9a-f]+$`, a.Value.String())
}
