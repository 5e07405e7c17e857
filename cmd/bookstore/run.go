package main

import (
	"github.com/spf13/cobra"

	"github.com/plpbookstore/bookstore/internal/queries"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Seed if empty, then run the full query walkthrough (default)",
	Args:  cobra.NoArgs,
	RunE:  runWalkthrough,
}

func runWalkthrough(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.seedIfEmpty(); err != nil {
		return err
	}

	runner := queries.NewRunner(s.catalog, s.out, s.logger, queries.DefaultParams())
	return runner.Run(s.ctx)
}
