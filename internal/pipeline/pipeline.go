package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/crimson-sun/starscope/internal/connector"
	"github.com/crimson-sun/starscope/internal/engine"
	"github.com/crimson-sun/starscope/internal/output/csvfile"
	"github.com/crimson-sun/starscope/internal/output/jsonfile"
)

// Classify loads the record collection from inPath, labels every record
// with cls, and writes the report table to outPath. The run is
// all-or-nothing: a malformed input or a classification error aborts
// before any row is written, so a report on disk is always complete.
func Classify(ctx context.Context, cls engine.Classifier, inPath, outPath string) error {
	repos, err := jsonfile.ReadRepos(inPath)
	if err != nil {
		return fmt.Errorf("pipeline classify: %w", err)
	}

	table, err := cls.Classify(repos)
	if err != nil {
		return fmt.Errorf("pipeline classify: %w", err)
	}

	out, err := csvfile.New(outPath)
	if err != nil {
		return fmt.Errorf("pipeline classify: %w", err)
	}
	if err := out.Write(ctx, table); err != nil {
		out.Close()
		return fmt.Errorf("pipeline classify: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("pipeline classify: %w", err)
	}

	slog.Info("report written", "strategy", cls.Name(), "records", len(repos), "path", outPath)
	return nil
}

// Export fetches every starred repository through the connector and writes
// the collection as JSON.
func Export(ctx context.Context, conn connector.Connector, outPath string) error {
	repos, err := conn.Starred(ctx)
	if err != nil {
		return fmt.Errorf("pipeline export: %w", err)
	}
	if err := jsonfile.WriteRepos(outPath, repos); err != nil {
		return fmt.Errorf("pipeline export: %w", err)
	}
	slog.Info("export complete", "records", len(repos), "path", outPath)
	return nil
}

// Enrich adds topics to every record of an exported collection and writes
// the enriched collection to outPath.
func Enrich(ctx context.Context, conn connector.Connector, inPath, outPath string) error {
	repos, err := jsonfile.ReadRepos(inPath)
	if err != nil {
		return fmt.Errorf("pipeline enrich: %w", err)
	}

	for i := range repos {
		topics, err := conn.Topics(ctx, repos[i].FullName)
		if err != nil {
			return fmt.Errorf("pipeline enrich: %w", err)
		}
		repos[i].Topics = topics
		if (i+1)%10 == 0 || i+1 == len(repos) {
			slog.Info("topics fetched", "done", i+1, "total", len(repos))
		}
	}

	if err := jsonfile.WriteRepos(outPath, repos); err != nil {
		return fmt.Errorf("pipeline enrich: %w", err)
	}
	slog.Info("enrichment complete", "records", len(repos), "path", outPath)
	return nil
}
