package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neurobreath/nbassist/internal/core/domain"
)

var (
	askRole         string
	askJurisdiction string
	askPagePath     string
	askPageName     string
	askUserRole     string
	askJSON         bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the assistant a question",
	Long: `Runs one complete assistant turn: the question passes the
safeguarding gate, is classified and routed, and is answered with
citations from the approved evidence registry.

Crisis and safeguarding queries are never sent to a model; they return
signposting for the selected jurisdiction. Without a configured
generation backend the answer is degraded to routing metadata.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askRole, "role", "r", "", "assistant role (buddy, coach, blog, narrator)")
	askCmd.Flags().StringVarP(&askJurisdiction, "jurisdiction", "j", "", "jurisdiction (UK, US, EU)")
	askCmd.Flags().StringVar(&askPagePath, "page", "", "path of the page the assistant is embedded in")
	askCmd.Flags().StringVar(&askPageName, "page-name", "", "display name of the current page")
	askCmd.Flags().StringVar(&askUserRole, "user-role", "", "your role (parent, teacher, carer, individual, professional)")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the full response as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if assistantService == nil {
		return errors.New("assistant service not configured")
	}

	qctx := domain.QueryContext{
		PagePath:     askPagePath,
		PageName:     askPageName,
		Jurisdiction: domain.Jurisdiction(askJurisdiction),
		Role:         domain.AssistantRole(askRole),
		UserRole:     domain.UserRole(askUserRole),
	}

	resp, err := assistantService.Ask(context.Background(), args[0], qctx, nil)
	if err != nil {
		if errors.Is(err, domain.ErrResponseBlocked) {
			cmd.Println("The generated answer failed safety checks and was withheld.")
			cmd.Println("Please try rephrasing your question.")
			return nil
		}
		return fmt.Errorf("ask failed: %w", err)
	}

	if askJSON {
		data, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal response: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(resp.Answer)

	if resp.Citations.Total() > 0 && showCitationsPreferred() {
		cmd.Println()
		cmd.Println(citationService.FormatGroup(resp.Citations))
	}

	for _, w := range resp.Warnings {
		cmd.Printf("\nNote: %s\n", w)
	}

	return nil
}

// showCitationsPreferred honours the stored showCitations preference.
// Without a preference service the citation block always renders.
func showCitationsPreferred() bool {
	if preferenceService == nil {
		return true
	}
	return preferenceService.Load().AI.ShowCitations
}
