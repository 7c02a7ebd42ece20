// Package cmd provides the command-line interface of Orion.
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sarchlab/orion/hooking"
	"github.com/sarchlab/orion/power"
	"github.com/sarchlab/orion/router"
	"github.com/sarchlab/orion/tech"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// Environment variables that provide the defaults of the global flags.
const (
	EnvTechNode  = "ORION_TECH_NODE"
	EnvFreq      = "ORION_FREQ"
	EnvTechTable = "ORION_TECH_TABLE"
	EnvRouters   = "ORION_ROUTERS"
)

// Options hold the collaborators that the commands use. Zero fields are
// replaced by the built-in technology table and router catalog, or by the
// files given on the command line.
type Options struct {
	Table   tech.Table
	Catalog *router.Catalog
}

type settings struct {
	opts Options

	techNode  string
	freq      string
	techTable string
	routers   string
	verbose   bool

	loadedCatalog *router.Catalog
}

func envOr(key, def string) string {
	if v, found := os.LookupEnv(key); found && v != "" {
		return v
	}

	return def
}

// NewRootCmd creates the root command with all the subcommands.
func NewRootCmd(opts Options) *cobra.Command {
	s := &settings{opts: opts}

	rootCmd := &cobra.Command{
		Use:   "orion",
		Short: "Orion estimates the power and area of on-chip networks.",
		Long: `Orion estimates the dynamic power, leakage power and area of ` +
			`network-on-chip links and routers, and of the datapath ` +
			`blocks next to them, from the technology node, the clock ` +
			`frequency, the traffic load and the microarchitecture.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&s.techNode, "tech", envOr(EnvTechNode, "65"),
		"technology node in nm")
	flags.StringVar(&s.freq, "freq", envOr(EnvFreq, "1GHz"),
		"clock frequency, such as 1e9 or 800MHz")
	flags.StringVar(&s.techTable, "tech-table", envOr(EnvTechTable, ""),
		"YAML file that replaces the built-in technology table")
	flags.StringVar(&s.routers, "routers", envOr(EnvRouters, ""),
		"YAML file with routers to add to the built-in catalog")
	flags.BoolVarP(&s.verbose, "verbose", "v", false,
		"log every evaluated component to stderr")

	rootCmd.AddCommand(
		newLinkCmd(s),
		newRouterCmd(s),
		newRoutersCmd(s),
		newALUCmd(s),
		newRegFileCmd(s),
		newPermuCmd(s),
		newSweepCmd(s),
	)

	return rootCmd
}

// Execute runs the command line and exits with the code that matches the
// outcome.
func Execute() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: cannot load .env: %v\n", err)
	}

	atexit.Exit(Run(NewRootCmd(Options{})))
}

// Run executes the command, prints the error if there is one and returns the
// exit code.
func Run(rootCmd *cobra.Command) int {
	c, err := rootCmd.ExecuteC()
	if err == nil {
		return ExitOK
	}

	if c == nil {
		c = rootCmd
	}

	fmt.Fprintf(c.ErrOrStderr(), "Error: %v\n", err)

	code := ExitCode(err)
	if code == ExitUsage {
		fmt.Fprint(c.ErrOrStderr(), c.UsageString())
	}

	return code
}

func (s *settings) table() (tech.Table, error) {
	if s.opts.Table != nil {
		return s.opts.Table, nil
	}

	if s.techTable == "" {
		return tech.DefaultTable(), nil
	}

	f, err := os.Open(s.techTable)
	if err != nil {
		return nil, &power.ConfigurationError{
			Field:  "technology table",
			Reason: err.Error(),
		}
	}
	defer f.Close()

	return tech.LoadTable(f)
}

func (s *settings) profile() (*tech.Profile, error) {
	node, err := tech.ParseNode(s.techNode)
	if err != nil {
		return nil, err
	}

	t, err := s.table()
	if err != nil {
		return nil, err
	}

	return t.Lookup(node)
}

func (s *settings) frequency() (power.Freq, error) {
	return power.ParseFreq(s.freq)
}

// catalog returns the router catalog. The routers file is only read once,
// into a copy of the catalog given in the options.
func (s *settings) catalog() (*router.Catalog, error) {
	if s.loadedCatalog != nil {
		return s.loadedCatalog, nil
	}

	c := s.opts.Catalog
	if c == nil {
		c = router.DefaultCatalog()
	}

	if s.routers == "" {
		s.loadedCatalog = c
		return c, nil
	}

	f, err := os.Open(s.routers)
	if err != nil {
		return nil, &power.ConfigurationError{
			Field:  "router catalog",
			Reason: err.Error(),
		}
	}
	defer f.Close()

	if s.opts.Catalog != nil {
		c = c.Clone()
	}

	if err := c.Load(f); err != nil {
		return nil, err
	}

	s.loadedCatalog = c

	return c, nil
}

// estimator creates a router estimator. With -v, every evaluated component
// is logged to stderr.
func (s *settings) estimator(cmd *cobra.Command) (*router.Estimator, error) {
	p, err := s.profile()
	if err != nil {
		return nil, err
	}

	c, err := s.catalog()
	if err != nil {
		return nil, err
	}

	e := router.MakeBuilder().
		WithTechnology(p).
		WithCatalog(c).
		Build("RouterEstimator")

	if s.verbose {
		logger := log.New(cmd.ErrOrStderr(), "", 0)
		e.AcceptHook(hooking.NewLogHook(logger, router.HookPosComponentEvaluated))
	}

	return e, nil
}
