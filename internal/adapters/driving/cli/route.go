package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neurobreath/nbassist/internal/core/domain"
)

var (
	routeJurisdiction string
	routeJSON         bool
)

var routeCmd = &cobra.Command{
	Use:   "route [query]",
	Short: "Show how a query would be routed",
	Long: `Runs the safety gate and classifier on a query and prints the
resulting routing decision without generating an answer. Useful for
inspecting why a query is escalated, which topic it matched, and which
evidence sources would be suggested.`,
	Args: cobra.ExactArgs(1),
	RunE: runRoute,
}

func init() {
	routeCmd.Flags().StringVarP(&routeJurisdiction, "jurisdiction", "j", "", "jurisdiction (UK, US, EU)")
	routeCmd.Flags().BoolVar(&routeJSON, "json", false, "output the decision as JSON")
	rootCmd.AddCommand(routeCmd)
}

func runRoute(cmd *cobra.Command, args []string) error {
	if routerService == nil {
		return errors.New("router service not configured")
	}

	qctx := domain.QueryContext{
		Jurisdiction: domain.Jurisdiction(routeJurisdiction),
	}
	decision := routerService.Route(args[0], qctx)

	if routeJSON {
		data, err := json.MarshalIndent(decision, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal decision: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println("Routing Decision")
	cmd.Println("================")
	cmd.Printf("  Query type:        %s\n", decision.QueryType.Description())
	cmd.Printf("  Safety level:      %s\n", decision.SafetyCheck.Level)
	cmd.Printf("  Action:            %s\n", decision.SafetyCheck.Action)
	if decision.Topic != "" {
		cmd.Printf("  Topic:             %s\n", decision.Topic)
	}
	cmd.Printf("  Requires evidence: %t\n", decision.RequiresEvidence)
	cmd.Printf("  Priority:          %s\n", decision.Priority)
	cmd.Printf("  Needs generation:  %t\n", routerService.NeedsLLM(decision))
	if len(decision.SuggestedSources) > 0 {
		cmd.Printf("  Suggested sources: %s\n", strings.Join(decision.SuggestedSources, ", "))
	}
	if len(decision.SafetyCheck.Keywords) > 0 {
		cmd.Printf("  Matched keywords:  %s\n", strings.Join(decision.SafetyCheck.Keywords, ", "))
	}

	return nil
}
