package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/BTBurke/simplex"
	"github.com/spf13/pflag"
)

func main() {
	opts, err := simplex.ParseCommandLine()
	if err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Could not parse configuration: %s\n\nUse simplex --help for options\n", err)
		}
		os.Exit(parseExitCode(err))
	}

	cfg, errs := simplex.NewConfig(opts...)
	if len(errs) > 0 {
		fmt.Fprintln(os.Stderr, "Error in config:")
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e)
		}
		os.Exit(1)
	}
	simplex.SuppressErrorReporting = !cfg.ErrorReports
	reporter := simplex.NewErrorReporter()

	if err := run(cfg); err != nil {
		log.Printf("simplex: %v", err)
		reporter.ReportError(err)
		reporter.Flush()
		os.Exit(1)
	}
}

// parseExitCode is 0 when the user asked for help and 1 for any other parse error
func parseExitCode(err error) int {
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	return 1
}

func run(cfg simplex.Config) error {
	gen, err := simplex.Generator(cfg)
	if err != nil {
		return fmt.Errorf("could not create generator: %w", err)
	}

	field := simplex.Render(gen, cfg)
	log.Printf("rendered %dx%d samples: %s", field.Width, field.Height, field.Summary)

	if err := field.Save(cfg); err != nil {
		return fmt.Errorf("could not write %s output: %w", cfg.Format, err)
	}
	return nil
}
