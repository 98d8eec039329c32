package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var (
	citeTitle   string
	citeExcerpt string
)

var citeCmd = &cobra.Command{
	Use:   "cite [source-id] [url]",
	Short: "Build a citation for an approved source",
	Long: `Validates a URL against the allowlisted domains of a registered
evidence source and prints the formatted citation. A URL outside the
source's domains is rejected; nothing off the allowlist is ever
citable.`,
	Args: cobra.ExactArgs(2),
	RunE: runCite,
}

var citeResolveCmd = &cobra.Command{
	Use:   "resolve [url]",
	Short: "Find which approved source covers a URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runCiteResolve,
}

func init() {
	citeCmd.Flags().StringVar(&citeTitle, "title", "", "citation title")
	citeCmd.Flags().StringVar(&citeExcerpt, "excerpt", "", "short quotation from the source")
	citeCmd.AddCommand(citeResolveCmd)
	rootCmd.AddCommand(citeCmd)
}

func runCite(cmd *cobra.Command, args []string) error {
	if citationService == nil {
		return errors.New("citation service not configured")
	}

	citation := citationService.Create(args[0], citeTitle, args[1], citeExcerpt)
	if citation == nil {
		cmd.Printf("Rejected: %s is not a valid URL for source %q.\n", args[1], args[0])
		return nil
	}

	cmd.Println(citationService.Format(*citation))
	return nil
}

func runCiteResolve(cmd *cobra.Command, args []string) error {
	if citationService == nil {
		return errors.New("citation service not configured")
	}

	citation := citationService.ResolveURL(args[0], "")
	if citation == nil {
		cmd.Printf("No approved source covers %s.\n", args[0])
		return nil
	}

	cmd.Printf("Source: %s\n", citation.SourceID)
	cmd.Println(citationService.Format(*citation))
	return nil
}
