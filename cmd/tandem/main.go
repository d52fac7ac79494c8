// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/tandem/duet"
	"github.com/ezrec/tandem/machine"
)

func main() {
	var compile string
	var verbose bool

	flag.StringVar(&compile, "c", "-", ".asm file to run")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	input := os.Stdin
	if compile != "-" {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()
		input = inf
	}

	asm := &machine.Assembler{}
	prog, err := asm.Parse(input)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	d := duet.NewDuet(prog)
	d.Verbose = verbose

	count, outcome, err := d.Run()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%v: machine 1 sent %v values\n", outcome, count)
}
