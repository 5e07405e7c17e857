package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plpbookstore/bookstore"
)

var explainAfter int

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Show execution statistics for the published-after range query",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		ex, err := s.catalog.Explain(s.ctx, bookstore.PublishedAfter(explainAfter))
		if err != nil {
			return err
		}
		if err := s.out.Line("Winning plan stage", ex.WinningStage); err != nil {
			return err
		}
		return s.out.Block(fmt.Sprintf("Query Execution Stats for finding books published after %d", explainAfter), ex.RawStats)
	},
}

func init() {
	explainCmd.Flags().IntVar(&explainAfter, "after", 2000, "published_year lower bound (exclusive)")
}
