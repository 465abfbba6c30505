//go:build (darwin || linux) && (amd64 || arm64)

package spout

import (
	"math"
	"runtime"
	"testing"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/hsiuhsiu/spout-go/internal/native"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type copyTextureArgs struct {
	sourceID, sourceTarget, destID, destTarget uint32
	width, height                              uint32
	invert                                     bool
	hostFbo                                    uint32
}

// libmPath returns a system library exporting nan(3).
func libmPath() string {
	if runtime.GOOS == "darwin" {
		return "/usr/lib/libSystem.B.dylib"
	}
	return "libm.so.6"
}

// TestSystemBackendCalls binds a function table of C callbacks through the
// host backend, so every call below crosses the C calling convention.
func TestSystemBackendCalls(t *testing.T) {
	libm, err := native.System.Open(libmPath())
	require.NoError(t, err)
	nan, err := native.System.Lookup(libm, "nan")
	require.NoError(t, err)

	var (
		released []uintptr
		copied   copyTextureArgs
	)
	noop := purego.NewCallback(func(uintptr) {})
	table := make([]uintptr, slotCount)
	for i := range table {
		table[i] = noop
	}
	table[slotOf("GetWidth")] = purego.NewCallback(func(uintptr) uint32 { return 1920 })
	table[slotOf("GetFrame")] = purego.NewCallback(func(uintptr) int64 { return -7 })
	// nan reads the handle as its tag argument and returns a double.
	table[slotOf("GetFps")] = nan
	table[slotOf("SendImage")] = purego.NewCallback(func(_ uintptr, _ *byte, width, height, _ uint32, invert bool) bool {
		return width == 1280 && height == 720 && !invert
	})
	table[slotOf("CopyTexture")] = purego.NewCallback(func(_ uintptr, sourceID, sourceTarget, destID, destTarget, width, height uint32, invert bool, hostFbo uint32) {
		copied = copyTextureArgs{sourceID, sourceTarget, destID, destTarget, width, height, invert, hostFbo}
	})
	table[slotOf("release")] = purego.NewCallback(func(h uintptr) {
		released = append(released, h)
	})

	// The object is a single word holding its function table.
	object := []unsafe.Pointer{unsafe.Pointer(&table[0])}
	objectAddr := uintptr(unsafe.Pointer(&object[0]))

	var getSpout func() *Handle
	native.System.Bind(&getSpout, purego.NewCallback(func() uintptr { return objectAddr }))
	h := getSpout()
	require.Equal(t, objectAddr, uintptr(unsafe.Pointer(h)))

	s := newSpout(native.System, h)
	assert.Equal(t, uint32(1920), s.GetWidth())
	assert.Equal(t, CLong(-7), s.GetFrame())
	assert.True(t, math.IsNaN(s.GetFps()), "float result not read from the float register")

	pixels := make([]byte, 4)
	assert.False(t, s.SendImage(&pixels[0], 1920, 1080, 0x1908, false))
	assert.True(t, s.SendImage(&pixels[0], 1280, 720, 0x1908, false))
	assert.False(t, s.SendImage(&pixels[0], 1280, 720, 0x1908, true))

	s.CopyTexture(1, 0x0DE1, 3, 0x84F5, 640, 480, true, 9)
	assert.Equal(t, copyTextureArgs{1, 0x0DE1, 3, 0x84F5, 640, 480, true, 9}, copied)

	require.NoError(t, s.Close())
	assert.Equal(t, []uintptr{objectAddr}, released)

	runtime.KeepAlive(object)
	runtime.KeepAlive(table)
}
