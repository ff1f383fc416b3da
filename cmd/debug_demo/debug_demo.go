package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"checklog/pkg/debug"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	FLAGS_verbose bool
	FLAGS_fatal   bool
)

func init() {
	logLevel := os.Getenv("LOG_LEVEL")
	if level, err := zerolog.ParseLevel(logLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

func main() {
	flag.BoolVar(&FLAGS_verbose, "verbose", false, "also fire the guarded variants")
	flag.BoolVar(&FLAGS_fatal, "fatal", false, "end by triggering the Panic path")
	flag.Parse()

	log.Info().Msgf("debug tier compiled in: %v", debug.Enabled)

	debug.Info("demo started with pid %d", os.Getpid())
	debug.Warn("the Warn tier is observational only")
	debug.Error("so is Error, despite the name")

	debug.InfoIf(FLAGS_verbose, "verbose mode on")
	rendered := 0
	debug.ErrorIf(FLAGS_verbose, "guard fired, lazy arg rendered: %v",
		debug.Lazy(func() string {
			rendered++
			return fmt.Sprintf("call %d", rendered)
		}))
	debug.WarnIf(rendered == 0 && FLAGS_verbose, "lazy arg was not rendered")

	debug.Check(os.Getpid() > 0, "pid must be positive")
	debug.CheckNoErr(nil, "no error expected here")

	debug.DInfo("only visible when built with -tags debug")
	if debug.Enabled {
		debug.DFprintf(os.Stderr, "debug scratch output, args: %v\n", flag.Args())
	}

	if FLAGS_fatal {
		debug.CheckNoErr(errors.New("requested via -fatal"), "demo shutdown")
	}
	fmt.Fprintf(os.Stderr, "demo finished\n")
}
