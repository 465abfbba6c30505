package spout

import (
	"errors"
	"reflect"
	"sync"
	"unsafe"
)

const (
	fakeEntryAddr = 0x6000_0000
	fakeSlotBase  = 0x7000_0000
)

type fakeCall struct {
	slot int
	args []any
}

// fakeLibrary is a Backend serving a SpoutLibrary whose function table lives
// in Go memory. Slot addresses are synthetic; Bind resolves them to recording
// Go functions, optionally backed by an implementation from impls.
type fakeLibrary struct {
	missingLibrary bool
	missingSymbol  bool
	nullHandle     bool
	impls          map[string]any

	mu      sync.Mutex
	opens   int
	lookups int
	table   []uintptr
	handles []*Handle
	calls   []fakeCall
}

func newFakeLibrary() *fakeLibrary {
	f := &fakeLibrary{impls: map[string]any{}}
	f.table = make([]uintptr, slotCount)
	for i := range f.table {
		f.table[i] = fakeSlotBase + uintptr(i)
	}
	return f
}

func (f *fakeLibrary) binding() *binding {
	return newBinding(f, "SpoutLibrary.dll")
}

func (f *fakeLibrary) Open(path string) (uintptr, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opens++
	if f.missingLibrary {
		return 0, errors.New("cannot open shared object file")
	}
	return 0x1000, nil
}

func (f *fakeLibrary) Lookup(lib uintptr, name string) (uintptr, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookups++
	if f.missingSymbol || name != EntryPointName {
		return 0, errors.New("undefined symbol")
	}
	return fakeEntryAddr, nil
}

func (f *fakeLibrary) Bind(fptr any, addr uintptr) {
	v := reflect.ValueOf(fptr).Elem()
	if addr == fakeEntryAddr {
		v.Set(reflect.ValueOf(f.getSpout))
		return
	}

	slot := int(addr - fakeSlotBase)
	name := reflect.TypeFor[vtable]().Field(slot).Name
	impl, hasImpl := f.impls[name]
	typ := v.Type()
	v.Set(reflect.MakeFunc(typ, func(in []reflect.Value) []reflect.Value {
		args := make([]any, len(in))
		for i, a := range in {
			args[i] = a.Interface()
		}
		f.mu.Lock()
		f.calls = append(f.calls, fakeCall{slot: slot, args: args})
		f.mu.Unlock()

		if hasImpl {
			return reflect.ValueOf(impl).Call(in)
		}
		out := make([]reflect.Value, typ.NumOut())
		for i := range out {
			out[i] = reflect.Zero(typ.Out(i))
		}
		return out
	}))
}

func (f *fakeLibrary) getSpout() *Handle {
	if f.nullHandle {
		return nil
	}
	h := &Handle{vtable: unsafe.Pointer(&f.table[0])}
	f.mu.Lock()
	f.handles = append(f.handles, h)
	f.mu.Unlock()
	return h
}

func (f *fakeLibrary) callsTo(slot int) []fakeCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var calls []fakeCall
	for _, c := range f.calls {
		if c.slot == slot {
			calls = append(calls, c)
		}
	}
	return calls
}

func (f *fakeLibrary) lastCall() (fakeCall, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return fakeCall{}, false
	}
	return f.calls[len(f.calls)-1], true
}

func (f *fakeLibrary) counts() (opens, lookups, calls int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.opens, f.lookups, len(f.calls)
}

func slotOf(name string) int {
	field, ok := reflect.TypeFor[vtable]().FieldByName(name)
	if !ok {
		panic("no slot " + name)
	}
	return field.Index[0]
}
