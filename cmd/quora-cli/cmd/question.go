package cmd

import (
	"quoraprofiler-backend/services/quora"

	"github.com/spf13/cobra"
)

func init() {
	questionAnswersCmd.Flags().String("cursor", "", "Pagination cursor.")
	questionAnswersCmd.Flags().String("sort", "", "Sort order.")
	rootCmd.AddCommand(questionAnswersCmd)

	questionCommentsCmd.Flags().String("cursor", "", "Pagination cursor.")
	rootCmd.AddCommand(questionCommentsCmd)
}

var questionAnswersCmd = &cobra.Command{
	Use:   "question-answers <url>",
	Short: "Prints the answers of the Quora question at the given url.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cursor, _ := cmd.Flags().GetString("cursor")
		sort, _ := cmd.Flags().GetString("sort")

		printResult(service.QuestionAnswers(cmd.Context(), quora.QuestionAnswersRequest{
			Url:    args[0],
			Cursor: cursor,
			Sort:   sort,
		}))
	},
}

var questionCommentsCmd = &cobra.Command{
	Use:   "question-comments <url>",
	Short: "Prints the comments of the Quora question at the given url.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cursor, _ := cmd.Flags().GetString("cursor")

		printResult(service.QuestionComments(cmd.Context(), quora.QuestionCommentsRequest{
			Url:    args[0],
			Cursor: cursor,
		}))
	},
}
