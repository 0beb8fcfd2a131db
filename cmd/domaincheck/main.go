// Command domaincheck validates contact documents against the sample
// Person aggregate and prints either its plain projection or the
// path-keyed validation errors.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dmitrymomot/domainkit/pkg/config"
	"github.com/dmitrymomot/domainkit/pkg/logger"
)

func main() {
	var s Settings
	if err := config.Load(&s, config.WithPrefix(envPrefix)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := newLogger(s, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.SetAsDefault(log)

	cmd := newRootCmd(&app{settings: s, log: log, out: os.Stdout})
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errInvalidDocument) {
			log.Error("command failed", logger.Error(err))
		}
		os.Exit(1)
	}
}
