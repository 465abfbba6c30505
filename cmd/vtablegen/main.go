// Vtablegen generates function table bindings from a struct declaration.
//
// Usage:
//
//	//go:generate go run ../../cmd/vtablegen -type=vtable -recv=Spout -handle=*Handle -output=zvtable.go
//
// See package internal/vtablegen for the generated code.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hsiuhsiu/spout-go/internal/vtablegen"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("vtablegen: ")

	var cfg vtablegen.Config
	flag.StringVar(&cfg.Dir, "dir", ".", "package `directory`")
	flag.StringVar(&cfg.Type, "type", "", "declaration struct `name`")
	flag.StringVar(&cfg.Recv, "recv", "", "receiver type `name` for generated methods")
	flag.StringVar(&cfg.Handle, "handle", "", "handle parameter type `expression`")
	flag.StringVar(&cfg.Output, "output", "", "output `file` name")
	flag.Parse()

	if cfg.Type == "" || cfg.Recv == "" || cfg.Handle == "" || cfg.Output == "" {
		flag.Usage()
		os.Exit(2)
	}

	src, err := vtablegen.Generate(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(cfg.Output, src, 0o644); err != nil {
		log.Fatal(err)
	}
}
