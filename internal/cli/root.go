// Package cli implements the cash command-line interface.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/govalues/cash/internal/config"
	"github.com/govalues/cash/internal/logging"
)

// env is the state shared by all commands of one invocation.
type env struct {
	cfgFile string
	verbose bool
	json    bool

	cfg *config.Config
	log *logrus.Logger
}

// Execute runs the command tree against the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd returns the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	e := &env{
		cfg: config.Default(),
		log: logging.Discard(),
	}
	rootCmd := &cobra.Command{
		Use:   "cash",
		Short: "Allocate money and make change without losing a cent",
		Long: `cash splits monetary amounts between recipients and makes change
from coins and notes, using exact decimal arithmetic.

Shares are truncated to the minor unit of the currency and the remainder is
handed out one minor unit at a time, so the shares always sum up to the
amount. Change is made either optimally (fewest pieces) or greedily.`,
		SilenceUsage:      true,
		PersistentPreRunE: e.setup,
	}

	rootCmd.PersistentFlags().StringVar(&e.cfgFile, "config", "", "config file (TOML)")
	rootCmd.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "verbose diagnostics on stderr")
	rootCmd.PersistentFlags().BoolVar(&e.json, "json", false, "print results as JSON")

	rootCmd.AddCommand(
		newSplitCmd(e),
		newProRataCmd(e),
		newChangeCmd(e),
		newConvertCmd(e),
		newCurrencyCmd(e),
	)
	return rootCmd
}

func (e *env) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(e.cfgFile)
	if err != nil {
		return err
	}
	log, err := logging.New(cmd.ErrOrStderr(), logging.Options{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Verbose: e.verbose,
	})
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	e.cfg, e.log = cfg, log
	e.log.WithFields(logging.Fields{
		"command": cmd.Name(),
		"config":  e.cfgFile,
	}).Debug("configuration loaded")
	return nil
}

// print writes v to out as indented JSON, or calls text otherwise.
func (e *env) print(out io.Writer, v interface{}, text func(io.Writer) error) error {
	if !e.json {
		return text(out)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
