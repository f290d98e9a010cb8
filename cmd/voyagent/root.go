package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voyagent/voyagent/config"
	"github.com/voyagent/voyagent/dashboard"
	"github.com/voyagent/voyagent/server"
	"github.com/voyagent/voyagent/tools"
	"github.com/voyagent/voyagent/travel"
)

type tripFlags struct {
	origin      string
	destination string
	startDate   string
	endDate     string
	interests   []string
	language    string
}

func (f *tripFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.origin, "from", "", "origin city")
	cmd.Flags().StringVar(&f.destination, "to", "", "destination city")
	cmd.Flags().StringVar(&f.startDate, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.endDate, "end", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringSliceVar(&f.interests, "interests", nil, "traveler interests")
	cmd.Flags().StringVar(&f.language, "language", "", "language code for the language briefing")
	for _, name := range []string{"from", "to", "start", "end"} {
		cobra.CheckErr(cmd.MarkFlagRequired(name))
	}
}

func (f *tripFlags) query() *travel.TripQuery {
	return &travel.TripQuery{
		Origin:      f.origin,
		Destination: f.destination,
		StartDate:   f.startDate,
		EndDate:     f.endDate,
		Interests:   f.interests,
		Language:    f.language,
	}
}

func loadPlanner() (*config.Config, *travel.Planner, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	planner := travel.New(cfg)
	for _, tool := range planner.Tools() {
		tool.SetStartHook(func(_ context.Context, t tools.ITool, _ any) {
			log.Printf("%s: running", t.Title())
		})
		tool.SetEndHook(func(_ context.Context, t tools.ITool, _, _ any) {
			log.Printf("%s: done", t.Title())
		})
		tool.SetErrorHook(func(_ context.Context, t tools.ITool, _ any, err error) {
			log.Printf("%s: %v", t.Title(), err)
		})
	}
	return cfg, planner, nil
}

// NewRootCmd builds the voyagent command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "voyagent",
		Short:         "AI travel planning assistant",
		Long:          "voyagent plans trips with a chain of specialist agents and briefs travelers on risk, crowds, prices and language.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newPlanCmd())
	root.AddCommand(newIntelCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newDashboardCmd())
	root.AddCommand(newAskCmd())
	return root
}

func newPlanCmd() *cobra.Command {
	flags := new(tripFlags)
	var withIntelligence bool
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan a trip",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, planner, err := loadPlanner()
			if err != nil {
				return err
			}
			if withIntelligence {
				plan, err := planner.PlanWithIntelligence(cmd.Context(), flags.query())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), plan.Itinerary.Render())
				fmt.Fprintln(cmd.OutOrStdout(), plan.Intelligence.Render())
				return nil
			}
			itinerary, err := planner.Plan(cmd.Context(), flags.query())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), itinerary.Render())
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&withIntelligence, "intelligence", false, "attach intelligence briefings")
	return cmd
}

func newIntelCmd() *cobra.Command {
	flags := new(tripFlags)
	var kindFlag string
	cmd := &cobra.Command{
		Use:   "intel",
		Short: "Run an intelligence briefing",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := travel.ParseKind(kindFlag)
			if err != nil {
				return err
			}
			_, planner, err := loadPlanner()
			if err != nil {
				return err
			}
			intel, err := planner.Intelligence(cmd.Context(), flags.query(), kind)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), intel.Render())
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&kindFlag, "type", travel.AllKind, "briefing type: risk, crowd, price, language or all")
	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, planner, err := loadPlanner()
			if err != nil {
				return err
			}
			return server.Run(server.NewHandler(planner), cfg.Host, cfg.Port)
		},
	}
}

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Run the interactive planning dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, planner, err := loadPlanner()
			if err != nil {
				return err
			}
			return dashboard.Run(cmd.Context(), planner)
		},
	}
}

func newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a travel question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			assistant := travel.NewAssistant(cfg)
			answer, err := assistant.Ask(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		},
	}
}
