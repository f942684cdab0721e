// Command corvid is the process entry point: it wires stdin/stdout to
// internal/uci, which in turn drives internal/driver.
//
// Adapted from the teacher's main.go (bufio.NewReader(os.Stdin) read
// loop, log.SetPrefix("info string ") so unexpected diagnostics still
// parse as a harmless UCI info line).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/driver"
	"github.com/corvidchess/corvid/internal/uci"
)

var (
	buildVersion = "(devel)"
	buildTime    = "(just now)"

	bookPath = flag.String("book", "", "path to an opening-book directory (optional)")
	version  = flag.Bool("version", false, "only print version and exit")
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "bench" {
		runBench(os.Args[2:])
		return
	}
	if len(os.Args) > 1 && os.Args[1] == "solve" {
		runSolve(os.Args[2:])
		return
	}

	fmt.Printf("corvid %v, built with %v at %v, running on %v\n",
		buildVersion, runtime.Version(), buildTime, runtime.GOARCH)

	flag.Parse()
	if *version {
		return
	}

	log.SetOutput(os.Stderr)
	log.SetPrefix("info string ")
	log.SetFlags(log.Lshortfile)

	d := driver.New(config.Default(), log.Default())
	if *bookPath != "" {
		d.OpenBook(*bookPath)
	}

	session := uci.NewSession(d, os.Stdout, log.Default())

	bio := bufio.NewReader(os.Stdin)
	for {
		line, _, err := bio.ReadLine()
		if err != nil {
			log.Println("error:", err)
			break
		}
		if err := session.Execute(string(line)); err != nil {
			if err != uci.ErrQuit {
				log.Println("for line:", string(line))
				log.Println("error:", err)
				continue
			}
			break
		}
	}
}
