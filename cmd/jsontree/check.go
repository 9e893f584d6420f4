package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/martinemde/jsontree/jsonparser"
	"github.com/panjf2000/ants/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.json>...",
	Short: "Validate JSON files concurrently",
	Long:  "Parse each file on a bounded worker pool and report per-file results. Exits non-zero if any file fails to parse.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("workers", 4, "Number of concurrent workers")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	workers, _ := cmd.Flags().GetInt("workers")
	verbose := viper.GetBool("verbose")
	maxDepth := viper.GetInt("max_depth")

	pool, err := ants.NewPool(workers)
	if err != nil {
		return fmt.Errorf("creating worker pool: %w", err)
	}
	defer pool.Release()

	// Each parse owns its input and cursor, so files can be checked in
	// parallel without synchronization. Results are indexed by position to
	// keep the report in argument order.
	results := make([]error, len(args))
	var wg sync.WaitGroup
	for i, path := range args {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			results[i] = checkFile(path, maxDepth)
		})
		if submitErr != nil {
			wg.Done()
			results[i] = fmt.Errorf("submitting %s: %w", path, submitErr)
		}
	}
	wg.Wait()

	failed := 0
	for i, path := range args {
		if results[i] != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, results[i])
		} else if verbose {
			fmt.Fprintf(os.Stderr, "%s: ok\n", path)
		}
	}
	fmt.Fprintf(os.Stderr, "%d files checked, %d failed\n", len(args), failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(args))
	}
	return nil
}

func checkFile(path string, maxDepth int) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = jsonparser.ParseWithMaxDepth(src, maxDepth)
	return err
}
