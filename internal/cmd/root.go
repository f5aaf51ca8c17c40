package cmd

import (
    "context"
    "fmt"
    "os"

    "github.com/SalmaDammak/experiment-logger/internal/config"
    "github.com/SalmaDammak/experiment-logger/internal/logging"
    "github.com/SalmaDammak/experiment-logger/internal/run"
    "github.com/spf13/cobra"
)

var (
    sourceDir string
    initialize bool
    debug bool
)

// entryExit carries the entry script's status out of RunE so Execute can
// propagate it as the process's own exit code.
var entryExit int

var rootCmd = &cobra.Command{
    Use:   "explog",
    Short: "explog - experiment run logger",
    SilenceUsage: true,
    PersistentPreRun: func(cmd *cobra.Command, args []string) {
        logging.Init(debug)
    },
    RunE: func(cmd *cobra.Command, args []string) error {
        cfg, err := config.Load(sourceDir)
        if err != nil {
            return err
        }
        if initialize {
            return initializeSource(cfg, sourceDir)
        }
        code, err := run.Execute(context.Background(), cfg, sourceDir)
        if err != nil {
            return err
        }
        entryExit = code
        return nil
    },
}

func Execute() {
    if err := rootCmd.Execute(); err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(1)
    }
    if entryExit != 0 {
        os.Exit(entryExit)
    }
}

func init() {
    rootCmd.PersistentFlags().StringVarP(&sourceDir, "source", "s", ".", "Experiment source directory")
    rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Verbose logs")
    rootCmd.Flags().BoolVar(&initialize, "initialize", false, "Scaffold an empty experiment source directory and exit")

    rootCmd.AddCommand(doctorCmd)
    rootCmd.AddCommand(historyCmd)
}
