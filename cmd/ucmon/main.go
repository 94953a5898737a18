// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ezrec/ucmon/io"
	"github.com/ezrec/ucmon/monitor"
)

func main() {
	var program string
	var script string
	var port uint
	var cycle time.Duration
	var verbose bool

	flag.StringVar(&program, "e", "", "program to run one-shot")
	flag.StringVar(&script, "s", "", ".star port device script")
	flag.UintVar(&port, "p", 0, "port number for the scripted device")
	flag.DurationVar(&cycle, "t", 0, "host duration of one delay cycle")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	mon := monitor.NewMonitor()
	mon.Verbose = verbose
	mon.Clock.CycleTime = cycle
	mon.Term.Input = os.Stdin

	if len(script) != 0 {
		if port > 255 {
			log.Fatalf("%v: port %v out of range", os.Args[0], port)
		}

		inf, err := os.Open(script)
		if err != nil {
			log.Fatalf("%v: %v", script, err)
		}
		defer inf.Close()

		dev, err := io.NewScript(script, inf, mon.Defines())
		if err != nil {
			log.Fatalf("%v: %v", script, err)
		}
		mon.Machine.SetPort(uint8(port), dev)
	}

	if len(program) != 0 {
		if err := mon.RunOnce(program); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := mon.Repl(); err != nil {
		log.Fatal(err)
	}
}
