package cmd

import (
    "context"
    "fmt"
    "time"

    "github.com/SalmaDammak/experiment-logger/internal/config"
    "github.com/SalmaDammak/experiment-logger/internal/store"
    "github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
    Use:   "history",
    Short: "List recorded runs for this source directory",
    RunE: func(cmd *cobra.Command, args []string) error {
        cfg, err := config.Load(sourceDir)
        if err != nil {
            return err
        }
        db, err := store.Open(cfg.DatabasePath(sourceDir))
        if err != nil {
            return err
        }
        defer db.Close()
        runs, err := db.List(context.Background())
        if err != nil {
            return err
        }
        if len(runs) == 0 {
            fmt.Println("no runs recorded")
            return nil
        }
        for _, r := range runs {
            fmt.Printf("%s  exit=%-3d  %s  (%s)\n", r.ID, r.ExitCode, r.RunDir,
                r.FinishedAt.Sub(r.StartedAt).Round(time.Second))
        }
        return nil
    },
}
