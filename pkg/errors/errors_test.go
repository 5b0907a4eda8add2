package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureHandler struct {
	errs   []*ConsoleError
	panics []*PanicError
}

func (h *captureHandler) HandleError(err *ConsoleError) { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *PanicError)   { h.panics = append(h.panics, err) }

func TestConsoleErrorFormat(t *testing.T) {
	cause := stderrors.New("connection refused")

	err := &ConsoleError{Op: "engine.Present", Kind: KindPresent, Err: cause}
	assert.Equal(t, "engine.Present [present]: connection refused", err.Error())

	err.Backend = "term"
	assert.Equal(t, "engine.Present [present] backend=term: connection refused", err.Error())
}

func TestConsoleErrorUnwrap(t *testing.T) {
	cause := stderrors.New("no such file")
	err := &ConsoleError{Op: "assets.Load", Kind: KindAssets, Err: cause}

	require.True(t, stderrors.Is(err, cause))

	wrapped := fmt.Errorf("loading cart: %w", err)
	var ce *ConsoleError
	require.True(t, stderrors.As(wrapped, &ce))
	assert.Equal(t, KindAssets, ce.Kind)
}

func TestErrorKindStrings(t *testing.T) {
	kinds := map[ErrorKind]string{
		KindUnknown: "unknown",
		KindInit:    "init",
		KindAssets:  "assets",
		KindConfig:  "config",
		KindBackend: "backend",
		KindPresent: "present",
		KindCapture: "capture",
		KindPanic:   "panic",
	}
	for kind, want := range kinds {
		assert.Equal(t, want, kind.String())
	}
}

func TestDecodeErrorMessage(t *testing.T) {
	err := &DecodeError{File: "map.txt", Expected: "8192 hex byte pairs", Got: "8191"}
	assert.Equal(t, "failed to decode map.txt: expected 8192 hex byte pairs, got 8191", err.Error())
}

func TestReportSetsTimestamp(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(&ConsoleError{Op: "op", Kind: KindConfig, Err: stderrors.New("boom")})

	require.Len(t, h.errs, 1)
	assert.False(t, h.errs[0].Timestamp.IsZero())
}

func TestRecoverReportsPanic(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	func() {
		defer Recover("errors_test.boom")
		panic("blown fuse")
	}()

	require.Len(t, h.panics, 1)
	assert.Equal(t, "errors_test.boom", h.panics[0].Op)
	assert.Equal(t, "blown fuse", h.panics[0].Value)
	assert.NotEmpty(t, h.panics[0].StackTrace)
}

func TestRecoverWithCallback(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	var got any
	func() {
		defer RecoverWithCallback("errors_test.cb", func(r any) { got = r })
		panic(42)
	}()

	assert.Equal(t, 42, got)
	require.Len(t, h.panics, 1)
}
