// Spout-go reports the state of the local Spout installation: the library
// version, the registered senders and the graphics adapters.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"unsafe"

	"github.com/hsiuhsiu/spout-go/pkg/spout"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("spout-go", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "log library loading to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	debug := slog.New(slog.DiscardHandler)
	if *verbose {
		debug = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		spout.SetLogger(debug)
		defer spout.SetLogger(nil)
	}

	logger := log.New(stderr, "", log.LstdFlags)
	logger.Printf("spout-go version: %s", spout.WrapperVersion())
	logger.Printf("spout library: %s", spout.LibraryPath)

	debug.Debug("opening library", "path", spout.LibraryPath)
	sp, err := spout.Open()
	if err != nil {
		if errors.Is(err, spout.ErrLibraryNotFound) || errors.Is(err, spout.ErrEntryPointNotFound) {
			fmt.Fprintf(stdout, "library unavailable: %v\n", err)
			return 1
		}
		logger.Printf("unexpected failure opening library: %v", err)
		return 1
	}
	defer func() {
		if cerr := sp.Close(); cerr != nil {
			logger.Printf("close error: %v", cerr)
		}
	}()

	fmt.Fprintf(stdout, "Spout version: %d\n", sp.GetSpoutVersion())
	fmt.Fprintf(stdout, "laptop: %t\n", sp.IsLaptop())

	name := make([]byte, 256)
	n := sp.GetSenderCount()
	fmt.Fprintf(stdout, "senders: %d\n", n)
	for i := range n {
		if !sp.GetSender(i, &name[0], int32(len(name))) {
			continue
		}
		var width, height, format uint32
		var share unsafe.Pointer
		if sp.GetSenderInfo(&name[0], &width, &height, &share, &format) {
			fmt.Fprintf(stdout, "  %s %dx%d format %d\n", spout.BufferString(name), width, height, format)
		} else {
			fmt.Fprintf(stdout, "  %s\n", spout.BufferString(name))
		}
	}

	adapters := sp.GetNumAdapters()
	fmt.Fprintf(stdout, "adapters: %d\n", adapters)
	for i := range adapters {
		if sp.GetAdapterName(i, &name[0], int32(len(name))) {
			fmt.Fprintf(stdout, "  %d: %s\n", i, spout.BufferString(name))
		}
	}
	return 0
}
