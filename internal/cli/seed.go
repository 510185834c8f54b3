package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mediashelf/mediashelf/internal/domain"
)

// seedInputs mirror the original sample data set.
var seedInputs = []domain.MediaInput{
	{Title: "Inception", Type: "MOVIE", Director: "Christopher Nolan", Budget: "$160M", Location: "LA, Paris", Duration: "148 min", YearTime: "2010"},
	{Title: "Breaking Bad", Type: "TV_SHOW", Director: "Vince Gilligan", Budget: "$3M/ep", Location: "Albuquerque", Duration: "49 min/ep", YearTime: "2008-2013"},
	{Title: "The Dark Knight", Type: "MOVIE", Director: "Christopher Nolan", Budget: "$185M", Location: "Chicago, London", Duration: "152 min", YearTime: "2008"},
	{Title: "Stranger Things", Type: "TV_SHOW", Director: "The Duffer Brothers", Budget: "$8M/ep", Location: "Atlanta, Georgia", Duration: "50 min/ep", YearTime: "2016-2024"},
	{Title: "The Shawshank Redemption", Type: "MOVIE", Director: "Frank Darabont", Budget: "$25M", Location: "Mansfield, Ohio", Duration: "142 min", YearTime: "1994"},
	{Title: "Game of Thrones", Type: "TV_SHOW", Director: "David Benioff, D.B. Weiss", Budget: "$6M/ep", Location: "Northern Ireland, Croatia", Duration: "55 min/ep", YearTime: "2011-2019"},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a set of sample records through the API",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newClient()
		if err != nil {
			return err
		}
		for _, input := range seedInputs {
			record, err := api.CreateMedia(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("seed %q: %w", input.Title, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created #%d %s\n", record.ID, record.Title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
