package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/starscope/internal/charts"
	"github.com/crimson-sun/starscope/internal/config"
	"github.com/crimson-sun/starscope/internal/connector"
	"github.com/crimson-sun/starscope/internal/engine/cluster"
	"github.com/crimson-sun/starscope/internal/engine/rules"
	"github.com/crimson-sun/starscope/internal/logging"
	"github.com/crimson-sun/starscope/internal/pipeline"

	// Register connector implementations.
	_ "github.com/crimson-sun/starscope/internal/connector/github"
)

func main() {
	cfg := config.Load()
	logging.Init(logging.ParseLevel(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "starscope: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(cfg).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "starscope: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "starscope",
		Short:         "Export, classify, and chart a user's starred GitHub repositories",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var k int
	clusterCmd := &cobra.Command{
		Use:   "cluster <stars.json> <report.csv>",
		Short: "Group repositories by TF-IDF similarity with seeded k-means",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return pipeline.Classify(cmd.Context(), cluster.New(cluster.WithK(k)), args[0], args[1])
		},
	}
	clusterCmd.Flags().IntVar(&k, "clusters", 20, "number of clusters")

	root.AddCommand(
		&cobra.Command{
			Use:   "export <stars.json>",
			Short: "Fetch all starred repositories and write them as JSON",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				conn, err := openConnector(cfg)
				if err != nil {
					return err
				}
				return pipeline.Export(cmd.Context(), conn, args[0])
			},
		},
		&cobra.Command{
			Use:   "topics <stars.json> <enriched.json>",
			Short: "Enrich an exported collection with repository topics",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				conn, err := openConnector(cfg)
				if err != nil {
					return err
				}
				return pipeline.Enrich(cmd.Context(), conn, args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "classify <stars.json> <report.csv>",
			Short: "Label repositories with the domain, project-type, and subdomain rules",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return pipeline.Classify(cmd.Context(), rules.New(), args[0], args[1])
			},
		},
		clusterCmd,
		&cobra.Command{
			Use:   "charts <report.csv> <outdir>",
			Short: "Render distribution bar charts from a classification report",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return charts.Generate(args[0], args[1])
			},
		},
	)
	return root
}

func openConnector(cfg config.Config) (connector.Connector, error) {
	ctor, err := connector.Get(cfg.Connector.Provider)
	if err != nil {
		return nil, err
	}
	return ctor(connector.Config{
		Token:     cfg.Connector.Token,
		Username:  cfg.Connector.Username,
		Endpoint:  cfg.Connector.Endpoint,
		PerPage:   cfg.Connector.PerPage,
		TopicRate: cfg.Connector.TopicRate,
	})
}
