package spout

import "unsafe"

//go:generate go run ../../cmd/vtablegen -type=vtable -recv=Spout -handle=*Handle -output=zvtable.go

// vtable mirrors the function table of a SpoutLibrary object. Field order is
// slot order: the n-th field is called through the n-th pointer of the table.
// Inserting, removing or reordering fields shifts every later slot.
//
// Every field takes the owning handle as its first argument. Exported fields
// become methods on Spout; unexported fields are either used internally or
// keep a slot whose signature is not exposed.
type vtable struct {
	// Sender

	// SetSenderName sets the name used by the next sender created.
	SetSenderName   func(h *Handle, senderName *byte)
	SetSenderFormat func(h *Handle, format uint32)
	ReleaseSender   func(h *Handle, msec uint32)
	// SendFbo sends the contents of a framebuffer object.
	SendFbo func(h *Handle, fboID uint32, width, height uint32, invert bool) bool
	// SendTexture sends an OpenGL texture, optionally blitting through
	// hostFbo.
	SendTexture func(h *Handle, textureID, textureTarget uint32, width, height uint32, invert bool, hostFbo uint32) bool
	// SendImage sends a pixel buffer in the given OpenGL format.
	SendImage func(h *Handle, pixels *byte, width, height uint32, glFormat uint32, invert bool) bool
	GetName   func(h *Handle) *byte
	GetWidth  func(h *Handle) uint32
	GetHeight func(h *Handle) uint32
	GetFps    func(h *Handle) float64
	GetFrame  func(h *Handle) CLong
	GetHandle func(h *Handle) unsafe.Pointer
	GetCPU    func(h *Handle) bool
	GetGLDX   func(h *Handle) bool

	// Receiver

	SetReceiverName func(h *Handle, senderName *byte)
	ReleaseReceiver func(h *Handle)
	// ReceiveTexture copies the connected sender's frame into an OpenGL
	// texture.
	ReceiveTexture func(h *Handle, textureID, textureTarget uint32, invert bool, hostFbo uint32) bool
	// ReceiveImage copies the connected sender's frame into pixels, which
	// must be large enough for the sender's dimensions in glFormat.
	ReceiveImage    func(h *Handle, pixels *byte, glFormat uint32, invert bool, hostFbo uint32) bool
	IsUpdated       func(h *Handle) bool
	IsConnected     func(h *Handle) bool
	IsFrameNew      func(h *Handle) bool
	GetSenderName   func(h *Handle) *byte
	GetSenderWidth  func(h *Handle) uint32
	GetSenderHeight func(h *Handle) uint32
	GetSenderFormat func(h *Handle) uint32
	GetSenderFps    func(h *Handle) float64
	GetSenderFrame  func(h *Handle) CLong
	GetSenderHandle func(h *Handle) unsafe.Pointer
	GetSenderCPU    func(h *Handle) bool
	GetSenderGLDX   func(h *Handle) bool
	SelectSender    func(h *Handle)

	// Frame count

	SetFrameCount       func(h *Handle, enable bool)
	DisableFrameCount   func(h *Handle)
	IsFrameCountEnabled func(h *Handle) bool
	HoldFps             func(h *Handle, fps int32)
	GetRefreshRate      func(h *Handle) float64
	SetFrameSync        func(h *Handle, senderName *byte)
	// WaitFrameSync blocks until the named sender signals a new frame or
	// timeout milliseconds elapse.
	WaitFrameSync   func(h *Handle, senderName *byte, timeout uint32) bool
	EnableFrameSync func(h *Handle, sync bool)

	// Memory buffer

	WriteMemoryBuffer func(h *Handle, senderName *byte, data *byte, length int32) bool
	// ReadMemoryBuffer copies at most maxLength bytes of the named sender's
	// shared memory into data and returns the number of bytes read.
	ReadMemoryBuffer    func(h *Handle, senderName *byte, data *byte, maxLength int32) int32
	CreateMemoryBuffer  func(h *Handle, name *byte, length int32) bool
	DeleteMemoryBuffer  func(h *Handle) bool
	GetMemoryBufferSize func(h *Handle, name *byte) int32

	// Logs

	OpenSpoutConsole        func(h *Handle)
	CloseSpoutConsole       func(h *Handle, warning bool)
	EnableSpoutLog          func(h *Handle)
	EnableSpoutLogFile      func(h *Handle, filename *byte, appendLog bool)
	getSpoutLog             func(h *Handle) unsafe.Pointer
	ShowSpoutLogs           func(h *Handle)
	DisableSpoutLog         func(h *Handle)
	SetSpoutLogLevel        func(h *Handle, level LogLevel)
	SpoutLog                func(h *Handle, format *byte)
	SpoutLogVerbose         func(h *Handle, format *byte)
	SpoutLogNotice          func(h *Handle, format *byte)
	SpoutLogWarning         func(h *Handle, format *byte)
	SpoutLogError           func(h *Handle, format *byte)
	SpoutLogFatal           func(h *Handle, format *byte)
	SpoutMessageBox         func(h *Handle, message *byte, milliseconds uint32) int32
	spoutMessageBoxIcon     func(*Handle)
	spoutMessageBoxButton   func(*Handle)
	spoutMessageBoxModeless func(*Handle)
	spoutMessageBoxWindow   func(*Handle)
	copyToClipBoard         func(*Handle) bool

	// Registry

	readDwordFromRegistry  func(*Handle) bool
	writeDwordToRegistry   func(*Handle) bool
	readPathFromRegistry   func(*Handle) bool
	writePathToRegistry    func(*Handle) bool
	removePathFromRegistry func(*Handle) bool
	removeSubKey           func(*Handle) bool
	findSubKey             func(*Handle) bool

	// Information

	GetSDKVersion func(h *Handle) unsafe.Pointer
	IsLaptop      func(h *Handle) bool
	StartTiming   func(h *Handle)
	// EndTiming returns the milliseconds elapsed since StartTiming.
	EndTiming func(h *Handle) float64

	// Graphics

	IsInitialized       func(h *Handle) bool
	BindSharedTexture   func(h *Handle) bool
	UnBindSharedTexture func(h *Handle) bool
	GetSharedTextureID  func(h *Handle) uint32

	// Sender names

	GetSenderCount func(h *Handle) int32
	// GetSender writes the name of the sender at index into senderName,
	// which holds maxSize bytes.
	GetSender      func(h *Handle, index int32, senderName *byte, maxSize int32) bool
	FindSenderName func(h *Handle, senderName *byte) bool
	// GetSenderInfo reports the dimensions, share handle and DXGI format of
	// the named sender through the out parameters.
	GetSenderInfo   func(h *Handle, senderName *byte, width, height *uint32, dxShareHandle *unsafe.Pointer, format *uint32) bool
	GetActiveSender func(h *Handle, senderName *byte) bool
	SetActiveSender func(h *Handle, senderName *byte) bool

	// Compatibility

	GetBufferMode      func(h *Handle) bool
	SetBufferMode      func(h *Handle, active bool)
	GetBuffers         func(h *Handle) int32
	SetBuffers         func(h *Handle, nBuffers int32)
	GetMaxSenders      func(h *Handle) int32
	SetMaxSenders      func(h *Handle, maxSenders int32)
	CreateSender       func(h *Handle, senderName *byte, width, height uint32, format uint32) bool
	UpdateSender       func(h *Handle, senderName *byte, width, height uint32) bool
	CreateReceiver     func(h *Handle, senderName *byte, width, height *uint32, useActive bool) bool
	CheckReceiver      func(h *Handle, senderName *byte, width, height *uint32, connected *bool) bool
	GetDX9             func(h *Handle) bool
	SetDX9             func(h *Handle, dx9 bool) bool
	GetMemoryShareMode func(h *Handle) bool
	SetMemoryShareMode func(h *Handle, mem bool) bool
	GetCPUMode         func(h *Handle) bool
	SetCPUMode         func(h *Handle, cpu bool) bool
	GetShareMode       func(h *Handle) int32
	SetShareMode       func(h *Handle, mode int32)
	SelectSenderPanel  func(h *Handle)
	GetHostPath        func(h *Handle, senderName *byte, hostPath *byte, maxChars int32) bool
	GetVerticalSync    func(h *Handle) int32
	SetVerticalSync    func(h *Handle, sync bool) bool
	GetSpoutVersion    func(h *Handle) int32

	// Graphics compatibility

	GetAutoShare func(h *Handle) bool
	SetAutoShare func(h *Handle, auto bool)
	IsGLDXReady  func(h *Handle) bool

	// Adapters

	GetNumAdapters func(h *Handle) int32
	GetAdapterName func(h *Handle, index int32, adapterName *byte, maxChars int32) bool
	AdapterName    func(h *Handle) *byte
	GetAdapter     func(h *Handle) int32

	// Graphics preference, Windows 10 1803 and later

	GetPerformancePreference func(h *Handle, path *byte) int32
	SetPerformancePreference func(h *Handle, preference int32, path *byte) bool
	GetPreferredAdapterName  func(h *Handle, preference int32, adapterName *byte, maxChars int32) bool
	SetPreferredAdapter      func(h *Handle, preference int32) bool
	IsPreferenceAvailable    func(h *Handle) bool
	IsApplicationPath        func(h *Handle, path *byte) bool

	// OpenGL utilities

	CreateOpenGL func(h *Handle) bool
	CloseOpenGL  func(h *Handle) bool
	CopyTexture  func(h *Handle, sourceID, sourceTarget, destID, destTarget uint32, width, height uint32, invert bool, hostFbo uint32)

	// Formats

	getDX11Format func(*Handle)
	setDX11Format func(*Handle)
	dx11Format    func(*Handle)
	gldxFormat    func(*Handle)
	glFormat      func(*Handle)
	glFormatName  func(*Handle)

	// DirectX

	OpenDirectX  func(h *Handle) bool
	CloseDirectX func(h *Handle)
	// OpenDirectX11 initialises DirectX 11, using device if it is not nil.
	OpenDirectX11  func(h *Handle, device unsafe.Pointer) bool
	CloseDirectX11 func(h *Handle)
	GetDX11Device  func(h *Handle) unsafe.Pointer
	GetDX11Context func(h *Handle) unsafe.Pointer

	// release destroys the SpoutLibrary object. Called only by Close or
	// the cleanup registered in Open.
	release func(h *Handle)
}
