package main

import (
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the sample catalog if the collection is empty",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		if err := s.seedIfEmpty(); err != nil {
			return err
		}
		n, err := s.catalog.Count(s.ctx, nil)
		if err != nil {
			return err
		}
		return s.out.Line("Books in collection", n)
	},
}
