package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neurobreath/nbassist/internal/core/domain"
)

var sourcesTopic string

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List approved evidence sources",
	Long: `Lists the evidence source registry: the only organisations the
assistants are permitted to cite. Tier A sources are governmental
health bodies, clinical guidelines and peer-reviewed journals; Tier B
sources are established support organisations and are always labelled
as such.`,
	RunE: runSources,
}

func init() {
	sourcesCmd.Flags().StringVarP(&sourcesTopic, "topic", "t", "", "only sources covering this topic (e.g. adhd, autism, sleep)")
	rootCmd.AddCommand(sourcesCmd)
}

func runSources(cmd *cobra.Command, _ []string) error {
	if sourceRegistry == nil {
		return errors.New("source registry not configured")
	}

	var sources []domain.EvidenceSource
	if sourcesTopic != "" {
		sources = sourceRegistry.SourcesByTopic(domain.Topic(sourcesTopic))
	} else {
		sources = sourceRegistry.AllSources()
	}

	if len(sources) == 0 {
		cmd.Println("No sources found.")
		return nil
	}

	cmd.Println("Approved Evidence Sources")
	cmd.Println("=========================")
	cmd.Println()
	for _, src := range sources {
		cmd.Printf("  %s — %s\n", src.ID, src.Name)
		cmd.Printf("      Tier: %s\n", src.Tier.Description())
		if len(src.Domains) > 0 {
			cmd.Printf("      Domains: %s\n", strings.Join(src.Domains, ", "))
		}
		if src.BaseURL != "" {
			cmd.Printf("      %s\n", src.BaseURL)
		}
		cmd.Println()
	}

	return nil
}
