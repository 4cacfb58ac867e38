package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

var titlesCmd = &cobra.Command{
	Use:   "titles",
	Short: "Inspect the controlled title vocabulary",
}

var titlesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List canonical titles in match precedence order",
	Args:  cobra.NoArgs,
	RunE:  runTitlesList,
}

var titlesMatchCmd = &cobra.Command{
	Use:   "match [title]",
	Short: "Show the canonical title a raw title maps to",
	Long: `Matches a raw job title against the vocabulary: first by case-insensitive
equality, then by substring containment in either direction, in vocabulary order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTitlesMatch,
}

func init() {
	titlesCmd.AddCommand(titlesListCmd)
	titlesCmd.AddCommand(titlesMatchCmd)
	rootCmd.AddCommand(titlesCmd)
}

func runTitlesList(cmd *cobra.Command, _ []string) error {
	if titleService == nil {
		return errors.New("title service not configured")
	}
	for i, title := range titleService.Vocabulary() {
		cmd.Printf("%2d. %s\n", i+1, title)
	}
	return nil
}

func runTitlesMatch(cmd *cobra.Command, args []string) error {
	if titleService == nil {
		return errors.New("title service not configured")
	}
	raw := strings.Join(args, " ")
	canonical, ok := titleService.Standardise(raw)
	if !ok {
		cmd.Println("no match")
		return nil
	}
	cmd.Println(canonical)
	return nil
}
