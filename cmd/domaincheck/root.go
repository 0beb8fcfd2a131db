package main

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/domainkit"
	"github.com/dmitrymomot/domainkit/internal/contact"
	"github.com/dmitrymomot/domainkit/pkg/logger"
)

var version = "dev"

// errInvalidDocument is returned after the error map has been printed, so
// the caller only has to set the exit status.
var errInvalidDocument = errors.New("document is invalid")

var errStdinTwice = errors.New("only one document can be read from stdin")

type app struct {
	settings Settings
	log      *slog.Logger
	out      io.Writer
	in       io.Reader
	output   string
}

func newRootCmd(a *app) *cobra.Command {
	if a.in == nil {
		a.in = os.Stdin
	}

	root := &cobra.Command{
		Use:           "domaincheck",
		Short:         "Validate contact documents",
		Long:          `Validate YAML or JSON contact documents and print the plain projection or the validation errors keyed by field path.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&a.output, "output", "o", a.settings.Output,
		"result encoding: json or yaml")

	root.AddCommand(newCreateCmd(a), newUpdateCmd(a))
	return root
}

func newCreateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create FILE",
		Short: "Create a person from a document",
		Long: `Decode a person document and run it through creation.

Examples:
  domaincheck create person.yaml
  cat person.json | domaincheck create - -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(a.output)
			if err != nil {
				return err
			}

			var in contact.Input
			if err := readDocument(args[0], a.in, &in); err != nil {
				return err
			}

			p, err := contact.NewPerson(in)
			return a.report(format, args[0], p, err)
		},
	}
}

func newUpdateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "update BASE OVERRIDES",
		Short: "Apply overrides to a stored person",
		Long: `Restore BASE without validation, apply the fields listed in OVERRIDES and
validate the result against BASE. Fields missing from OVERRIDES are kept.

Examples:
  domaincheck update person.yaml patch.yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "-" && args[1] == "-" {
				return errStdinTwice
			}

			format, err := parseOutputFormat(a.output)
			if err != nil {
				return err
			}

			var base contact.Input
			if err := readDocument(args[0], a.in, &base); err != nil {
				return err
			}
			var patch contact.Patch
			if err := readDocument(args[1], a.in, &patch); err != nil {
				return err
			}

			p, err := contact.UpdatePerson(contact.RestorePerson(base), patch)
			return a.report(format, args[1], p, err)
		},
	}
}

// report prints the outcome of a lifecycle call and logs it.
func (a *app) report(format outputFormat, file string, p *contact.Person, err error) error {
	switch {
	case err == nil:
		a.log.Info("person is valid",
			slog.String("file", file),
			logger.Lifecycle(p.Lifecycle()),
		)
		return writeResult(a.out, format, result{
			Valid:     true,
			Lifecycle: p.Lifecycle().String(),
			Person:    p.Object(),
		})
	case domainkit.IsValidationFailure(err):
		a.log.Warn("person is invalid",
			slog.String("file", file),
			logger.ValidationErrors(err),
		)
		if werr := writeResult(a.out, format, result{Errors: domainkit.ExtractValidationErrors(err)}); werr != nil {
			return werr
		}
		return errInvalidDocument
	default:
		return err
	}
}
