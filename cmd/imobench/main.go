package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/stellarlinkco/imobench"
)

var (
	osExit                 = os.Exit
	stderrWriter io.Writer = os.Stderr
)

// errViolationsFound signals a nonzero exit after the violations have
// already been printed.
var errViolationsFound = errors.New("validation violations found")

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errViolationsFound) {
			osExit(1)
			return
		}
		fmt.Fprintln(stderrWriter, err)
		osExit(1)
	}
}

type cliState struct {
	dataDir string
}

func (st *cliState) loader() (*imobench.Loader, error) {
	return imobench.NewLoader(st.dataDir)
}

func newRootCmd() *cobra.Command {
	st := &cliState{dataDir: imobench.DefaultDataDir}

	root := &cobra.Command{
		Use:           "imobench",
		Short:         "Inspect the IMO Bench datasets",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&st.dataDir, "data-dir", st.dataDir, "path to the dataset directory")

	root.AddCommand(newListCmd(st))
	root.AddCommand(newShowCmd(st))
	root.AddCommand(newStatsCmd(st))
	root.AddCommand(newValidateCmd(st))
	return root
}
