package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newZerologTestLogger(t *testing.T) (*ZerologLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l := zerolog.New(&buf).Level(zerolog.DebugLevel)
	return NewZerologLogger(l), &buf
}

func TestZerologLogger_Levels_WriteExpectedOutput(t *testing.T) {
	log, buf := newZerologTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()
	for _, s := range []string{
		`"level":"debug"`, `"message":"dbg"`, `"a":1`,
		`"level":"info"`, `"message":"inf"`, `"b":2`,
		`"level":"warn"`, `"message":"wrn"`, `"c":3`,
		`"level":"error"`, `"message":"err"`, `"d":4`,
	} {
		require.Contains(t, out, s)
	}
}

func TestZerologLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newZerologTestLogger(t)

	log2 := log.With("req_id", "123")
	log2.Info(context.Background(), "hello", "k", "v")

	out := buf.String()
	require.Contains(t, out, `"req_id":"123"`)
	require.Contains(t, out, `"k":"v"`)
	require.Contains(t, out, `"message":"hello"`)
}

func TestZerologLogger_OddArgsDoNotPanic(t *testing.T) {
	log, buf := newZerologTestLogger(t)

	log.Info(context.Background(), "odd", "only-key")
	require.True(t, strings.Contains(buf.String(), `"message":"odd"`))
}
