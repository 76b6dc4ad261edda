// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// zet-probe loads the Level Zero tools API and reports which entry points
// the installed loader provides.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"

	"github.com/canonical/kobuk-gfx-level-zero/internal/controller"
	"github.com/canonical/kobuk-gfx-level-zero/vc"
)

type exitCode int

const (
	exitSuccess exitCode = 0
	exitFailure exitCode = 1

	// Go 'flag' package calls os.Exit(2) on flag parse errors, if ExitOnError is set
	exitParseError exitCode = 2
)

func main() {
	os.Exit(int(mainWithExitCode()))
}

func mainWithExitCode() exitCode {
	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		return parseError("Failure to parse arguments: %v", err)
	}

	if cfg.Version {
		fmt.Printf("%s (Level Zero %s)\n", vc.Version(), vc.HeaderRevision())
		return exitSuccess
	}

	if cfg.VerboseMode {
		log.SetLevel(log.DebugLevel)
		// Dump the arguments in debug mode.
		cfg.Dump()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), shutdownSignals...)
	defer cancel()

	log.Infof("Starting zet-probe %s (revision %s, build timestamp %s)",
		vc.Version(), vc.Revision(), vc.BuildTimestamp())

	ctlr := controller.New(cfg)
	defer ctlr.Shutdown()

	if err = ctlr.Start(ctx); err != nil {
		var exitErr controller.ErrorWithExitCode
		if errors.As(err, &exitErr) {
			log.Error(exitErr)
			return exitCode(exitErr.Code())
		}
		return failure("Failed to probe tools API: %v", err)
	}
	return exitSuccess
}

func parseError(msg string, args ...interface{}) exitCode {
	log.Errorf(msg, args...)
	return exitParseError
}

func failure(msg string, args ...interface{}) exitCode {
	log.Errorf(msg, args...)
	return exitFailure
}
