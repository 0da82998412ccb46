package cmd

import (
	"quoraprofiler-backend/services/quora"

	"github.com/spf13/cobra"
)

func init() {
	searchQuestionsCmd.Flags().String("cursor", "", "Pagination cursor.")
	searchQuestionsCmd.Flags().String("time", "", "Time filter (e.g. week, month, year).")
	rootCmd.AddCommand(searchQuestionsCmd)

	searchAnswersCmd.Flags().String("cursor", "", "Pagination cursor.")
	searchAnswersCmd.Flags().String("time", "", "Time filter (e.g. week, month, year).")
	rootCmd.AddCommand(searchAnswersCmd)

	searchProfilesCmd.Flags().String("cursor", "", "Pagination cursor.")
	rootCmd.AddCommand(searchProfilesCmd)
}

var searchQuestionsCmd = &cobra.Command{
	Use:   "search-questions <query> <language>",
	Short: "Search for questions across Quora.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cursor, _ := cmd.Flags().GetString("cursor")
		timeFilter, _ := cmd.Flags().GetString("time")

		printResult(service.SearchQuestions(cmd.Context(), quora.SearchQuestionsRequest{
			Query:    args[0],
			Language: args[1],
			Cursor:   cursor,
			Time:     timeFilter,
		}))
	},
}

var searchAnswersCmd = &cobra.Command{
	Use:   "search-answers <query> <language>",
	Short: "Search for answers across Quora.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cursor, _ := cmd.Flags().GetString("cursor")
		timeFilter, _ := cmd.Flags().GetString("time")

		printResult(service.SearchAnswers(cmd.Context(), quora.SearchAnswersRequest{
			Query:    args[0],
			Language: args[1],
			Cursor:   cursor,
			Time:     timeFilter,
		}))
	},
}

var searchProfilesCmd = &cobra.Command{
	Use:   "search-profiles <query> <language>",
	Short: "Search for user profiles across Quora.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cursor, _ := cmd.Flags().GetString("cursor")

		printResult(service.SearchProfiles(cmd.Context(), quora.SearchProfilesRequest{
			Query:    args[0],
			Language: args[1],
			Cursor:   cursor,
		}))
	},
}
