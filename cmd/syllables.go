package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sile16/karaoke/internal/syllable"
)

var syllablesCmd = &cobra.Command{
	Use:   "syllables <word>...",
	Short: "Print the syllable split for Turkish words",
	Long: `Syllables prints how each word would be split for timing synthesis.
Useful for checking the splitter against unusual words before aligning.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, word := range args {
			fmt.Printf("%s\t%s\n", word, strings.Join(syllable.Split(word), "-"))
		}
	},
}

func init() {
	rootCmd.AddCommand(syllablesCmd)
}
