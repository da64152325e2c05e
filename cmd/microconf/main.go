// FILE: lixenwraith/microconf/cmd/microconf/main.go
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/lixenwraith/microconf"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const appName = "microconf"

// options holds the flags shared by all subcommands
type options struct {
	schemaPath  string
	maxFileSize int64
	noTraversal bool
	debug       bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix(appName + ": ")
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit status.
// Parse failures exit with the negated result code of their kind.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return 0
	}
	log.Print(err)

	if kind, ok := microconf.KindOf(err); ok {
		return -kind.Code()
	}
	return 1
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           appName,
		Short:         "Parse key = value configuration files against a binding schema",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.schemaPath, "schema", "s", "", "binding schema file (.toml, .yaml, .json)")
	flags.Int64Var(&opts.maxFileSize, "max-size", 0, "reject config files larger than this many bytes (0 = unlimited)")
	flags.BoolVar(&opts.noTraversal, "no-traversal", false, "reject relative config paths escaping the working directory")
	flags.BoolVar(&opts.debug, "debug", false, "dump the decoded schema to stderr")
	root.MarkPersistentFlagRequired("schema")

	parseCmd := &cobra.Command{
		Use:   "parse [config-file]",
		Short: "Parse a config file and print the resolved values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := load(opts, args, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return printTable(cmd.OutOrStdout(), table)
		},
	}

	checkCmd := &cobra.Command{
		Use:   "check [config-file]",
		Short: "Parse a config file and report only errors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := load(opts, args, cmd.ErrOrStderr())
			return err
		},
	}

	root.AddCommand(parseCmd, checkCmd)
	return root
}

// load instantiates the schema and parses the selected config file into it.
func load(opts *options, args []string, debugOut io.Writer) (*microconf.Table, error) {
	schema, err := microconf.LoadSchema(opts.schemaPath)
	if err != nil {
		return nil, err
	}
	if opts.debug {
		spew.Fdump(debugOut, schema)
	}

	table, err := schema.Instantiate()
	if err != nil {
		return nil, fmt.Errorf("invalid schema '%s': %w", opts.schemaPath, err)
	}

	var path string
	if len(args) > 0 {
		path = args[0]
	} else {
		var found bool
		path, found = microconf.Discover(microconf.DefaultDiscoveryOptions(appName), nil)
		if !found {
			return nil, errors.New("no config file given and none discovered")
		}
		log.Printf("using discovered config file %s", path)
	}

	parseOpts := microconf.DefaultParseOptions()
	parseOpts.MaxFileSize = opts.maxFileSize
	parseOpts.PreventPathTraversal = opts.noTraversal

	if err := table.ParseWithOptions(path, parseOpts); err != nil {
		return nil, err
	}
	return table, nil
}

// printTable writes one `key = value` line per binding. Terminals get aligned columns.
func printTable(out io.Writer, table *microconf.Table) error {
	values := table.Values()

	if isTerminal(out) {
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, b := range table.Bindings() {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", b.Key, b.Type, microconf.FormatValue(values[b.Key]))
		}
		return tw.Flush()
	}

	for _, b := range table.Bindings() {
		if _, err := fmt.Fprintf(out, "%s = %s\n", b.Key, microconf.FormatValue(values[b.Key])); err != nil {
			return err
		}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
