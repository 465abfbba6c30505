//go:build darwin || freebsd || linux

package native

import "github.com/ebitengine/purego"

func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func lookupSymbol(lib uintptr, name string) (uintptr, error) {
	return purego.Dlsym(lib, name)
}

func bindFunc(fptr any, addr uintptr) {
	purego.RegisterFunc(fptr, addr)
}
