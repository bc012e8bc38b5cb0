package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerWritesThroughSlog(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	ctx := context.Background()

	l.With("component", "bindings").Debug(ctx, "loaded library", "path", "/opt/fmod/lib/libfmod.so.13")
	l.Warn(ctx, "careful")
	l.Log(ctx, slog.LevelError, "fmod", "file", "fmod_channel.cpp")

	out := buf.String()
	assert.Contains(t, out, "component=bindings")
	assert.Contains(t, out, "path=/opt/fmod/lib/libfmod.so.13")
	assert.Contains(t, out, "level=WARN msg=careful")
	assert.Contains(t, out, "level=ERROR msg=fmod file=fmod_channel.cpp")
}

func TestNewNilUsesDefault(t *testing.T) {
	assert.NotNil(t, New(nil))
}

func TestDiscard(t *testing.T) {
	l := Discard().With("k", "v")
	l.Info(context.Background(), "dropped")
	l.Error(context.Background(), "dropped")
}
