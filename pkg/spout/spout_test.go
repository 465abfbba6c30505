package spout

import (
	"bytes"
	"log/slog"
	"reflect"
	"runtime"
	"strings"
	"testing"
	"time"
	"unsafe"

	"github.com/hsiuhsiu/spout-go/internal/native"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotCountMatchesDeclaration(t *testing.T) {
	assert.Equal(t, reflect.TypeFor[vtable]().NumField(), slotCount)
	assert.Equal(t, slotCount-1, slotOf("release"), "release is the last slot")
}

func TestDispatchForwardsArguments(t *testing.T) {
	f := newFakeLibrary()
	s, err := f.binding().open()
	require.NoError(t, err)
	defer s.Close()

	vt := reflect.TypeFor[vtable]()
	recv := reflect.ValueOf(s)
	for i := range vt.NumField() {
		field := vt.Field(i)
		if !field.IsExported() {
			continue
		}
		m := recv.MethodByName(field.Name)
		require.True(t, m.IsValid(), "no method for slot %d %s", i, field.Name)

		args := make([]reflect.Value, m.Type().NumIn())
		for j := range args {
			args[j] = argValue(t, m.Type().In(j), i*16+j+1)
		}
		m.Call(args)

		call, ok := f.lastCall()
		require.True(t, ok)
		require.Equal(t, i, call.slot, "%s dispatched to wrong slot", field.Name)
		require.Len(t, call.args, len(args)+1, "%s", field.Name)
		assert.True(t, call.args[0] == any(s.handle), "%s: handle is not argument zero", field.Name)
		for j, a := range args {
			assert.True(t, call.args[j+1] == a.Interface(), "%s: argument %d changed", field.Name, j)
		}
	}
}

// argValue returns a value of type t that is distinct for each n.
func argValue(t *testing.T, typ reflect.Type, n int) reflect.Value {
	switch typ.Kind() {
	case reflect.Bool:
		return reflect.ValueOf(n%2 == 1).Convert(typ)
	case reflect.Int32, reflect.Int64:
		return reflect.ValueOf(int64(n)).Convert(typ)
	case reflect.Uint32, reflect.Uint64:
		return reflect.ValueOf(uint64(n)).Convert(typ)
	case reflect.Float64:
		return reflect.ValueOf(float64(n) + 0.5).Convert(typ)
	case reflect.Pointer:
		return reflect.New(typ.Elem())
	case reflect.UnsafePointer:
		return reflect.ValueOf(unsafe.Pointer(new(byte)))
	}
	t.Fatalf("no test value for parameter type %s", typ)
	return reflect.Value{}
}

func TestReturnValuesPassThrough(t *testing.T) {
	f := newFakeLibrary()
	f.impls["GetWidth"] = func(*Handle) uint32 { return 1920 }
	f.impls["GetFps"] = func(*Handle) float64 { return 59.94 }
	f.impls["GetSenderCount"] = func(*Handle) int32 { return -1 }
	f.impls["SendImage"] = func(_ *Handle, _ *byte, width, height, _ uint32, _ bool) bool {
		return width == 1280 && height == 720
	}

	s, err := f.binding().open()
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, uint32(1920), s.GetWidth())
	assert.Equal(t, 59.94, s.GetFps())
	assert.Equal(t, int32(-1), s.GetSenderCount())

	pixels := make([]byte, 4)
	assert.False(t, s.SendImage(&pixels[0], 1920, 1080, 0x1908, false))
	assert.True(t, s.SendImage(&pixels[0], 1280, 720, 0x1908, false))
}

func TestOpenLoadsLibraryOnce(t *testing.T) {
	f := newFakeLibrary()
	b := f.binding()

	var spouts []*Spout
	for range 5 {
		s, err := b.open()
		require.NoError(t, err)
		spouts = append(spouts, s)
	}

	opens, lookups, _ := f.counts()
	assert.Equal(t, 1, opens)
	assert.Equal(t, 1, lookups)

	require.Len(t, f.handles, 5)
	for i, s := range spouts {
		assert.Same(t, f.handles[i], s.handle, "each Open gets its own handle")
		require.NoError(t, s.Close())
	}
}

func TestCloseReleasesOnce(t *testing.T) {
	f := newFakeLibrary()
	s, err := f.binding().open()
	require.NoError(t, err)
	h := s.handle

	require.NoError(t, s.Close())
	require.ErrorIs(t, s.Close(), ErrClosed)

	releases := f.callsTo(slotOf("release"))
	require.Len(t, releases, 1)
	assert.Same(t, h, releases[0].args[0])

	assert.Panics(t, func() { s.GetWidth() }, "a closed Spout must not dispatch")
}

func TestCloseNil(t *testing.T) {
	var s *Spout
	assert.NoError(t, s.Close())
}

func TestCleanupReleasesUnclosed(t *testing.T) {
	f := newFakeLibrary()
	b := f.binding()

	var h *Handle
	func() {
		s, err := b.open()
		require.NoError(t, err)
		h = s.handle
	}()

	assert.Eventually(t, func() bool {
		runtime.GC()
		return len(f.callsTo(slotOf("release"))) == 1
	}, 5*time.Second, 10*time.Millisecond)

	releases := f.callsTo(slotOf("release"))
	require.Len(t, releases, 1)
	assert.Same(t, h, releases[0].args[0])
}

func TestCloseCancelsCleanup(t *testing.T) {
	f := newFakeLibrary()
	b := f.binding()

	func() {
		s, err := b.open()
		require.NoError(t, err)
		require.NoError(t, s.Close())
	}()

	for range 5 {
		runtime.GC()
		time.Sleep(10 * time.Millisecond)
	}
	assert.Len(t, f.callsTo(slotOf("release")), 1)
}

func TestCallKeepsSpoutAlive(t *testing.T) {
	f := newFakeLibrary()
	released := func() bool { return len(f.callsTo(slotOf("release"))) > 0 }
	f.impls["WaitFrameSync"] = func(*Handle, *byte, uint32) bool {
		for range 10 {
			runtime.GC()
			time.Sleep(time.Millisecond)
		}
		return !released()
	}

	var notReleased bool
	func() {
		s, err := f.binding().open()
		require.NoError(t, err)
		notReleased = s.WaitFrameSync(nil, 5000)
	}()
	assert.True(t, notReleased, "released while a call was in progress")

	assert.Eventually(t, func() bool {
		runtime.GC()
		return released()
	}, 5*time.Second, 10*time.Millisecond)
}

func TestNullHandle(t *testing.T) {
	f := newFakeLibrary()
	f.nullHandle = true

	s, err := f.binding().open()
	require.ErrorIs(t, err, ErrNullHandle)
	assert.Nil(t, s)

	_, _, calls := f.counts()
	assert.Zero(t, calls, "nothing may be dispatched without a handle")
}

func TestMissingLibrary(t *testing.T) {
	f := newFakeLibrary()
	f.missingLibrary = true
	b := f.binding()

	_, err := b.open()
	require.ErrorIs(t, err, ErrLibraryNotFound)
	assert.True(t, strings.HasPrefix(err.Error(), "spout: library not found: SpoutLibrary.dll: "), err.Error())
	assert.Contains(t, err.Error(), "cannot open shared object file")
	assert.NotErrorIs(t, err, ErrEntryPointNotFound)

	_, err = b.open()
	require.ErrorIs(t, err, ErrLibraryNotFound)
	opens, lookups, _ := f.counts()
	assert.Equal(t, 1, opens)
	assert.Zero(t, lookups)
}

func TestMissingEntryPoint(t *testing.T) {
	f := newFakeLibrary()
	f.missingSymbol = true

	_, err := f.binding().open()
	require.ErrorIs(t, err, ErrEntryPointNotFound)
	assert.Equal(t, "spout: entry point not found: GetSpout in SpoutLibrary.dll: undefined symbol", err.Error())
}

func TestNewPanics(t *testing.T) {
	f := newFakeLibrary()
	f.nullHandle = true
	defer func(b *binding) { defaultBinding = b }(defaultBinding)
	defaultBinding = f.binding()

	assert.PanicsWithError(t, ErrNullHandle.Error()+": SpoutLibrary.dll", func() { New() })
}

func TestNew(t *testing.T) {
	f := newFakeLibrary()
	defer func(b *binding) { defaultBinding = b }(defaultBinding)
	defaultBinding = f.binding()

	s := New()
	require.NotNil(t, s)
	require.NoError(t, s.Close())
}

func TestOpenSystemLibraryMissing(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Spout may be installed on Windows hosts")
	}
	_, err := newBinding(native.System, "/nonexistent/"+LibraryPath).open()
	require.ErrorIs(t, err, ErrLibraryNotFound)
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	f := newFakeLibrary()
	s, err := f.binding().open()
	require.NoError(t, err)
	require.NoError(t, s.Close())

	out := buf.String()
	assert.Contains(t, out, "library loaded")
	assert.Contains(t, out, "symbol="+EntryPointName)
	assert.Contains(t, out, "handle acquired")
	assert.Contains(t, out, "handle released")
	assert.NotContains(t, out, "cleanup")
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "Silent", LogLevelSilent.String())
	assert.Equal(t, "Warning", LogLevelWarning.String())
	assert.Equal(t, "None", LogLevelNone.String())
	assert.Equal(t, "LogLevel(9)", LogLevel(9).String())
}

func TestCStrings(t *testing.T) {
	p, err := CString("sender one")
	require.NoError(t, err)
	assert.Equal(t, "sender one", GoString(p))
	assert.Equal(t, "", GoString(nil))

	_, err = CString("bad\x00name")
	assert.Error(t, err)

	buf := make([]byte, 16)
	copy(buf, "adapter")
	assert.Equal(t, "adapter", BufferString(buf))
}
