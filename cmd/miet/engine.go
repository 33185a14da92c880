package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	miet "github.com/gipersonic/miet"
	"github.com/gipersonic/miet/internal/adapters/file"
	loamAdapter "github.com/gipersonic/miet/internal/adapters/loam"
	"github.com/gipersonic/miet/internal/logging"
)

// buildEngine assembles an engine from the persistent flags, leaving
// stores and delivery channels to the caller.
func buildEngine(cmd *cobra.Command, extra ...miet.Option) (*miet.Engine, *slog.Logger, error) {
	catalogPath, _ := cmd.Flags().GetString("catalog")
	quizPath, _ := cmd.Flags().GetString("quiz")
	resourcesPath, _ := cmd.Flags().GetString("resources")
	debug, _ := cmd.Flags().GetBool("debug")

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := logging.New(level)

	opts := []miet.Option{miet.WithLogger(logger)}
	if quizPath != "" {
		opts = append(opts, miet.WithQuizSource(file.NewQuizSource(quizPath)))
	}
	if resourcesPath != "" {
		loader, err := loamAdapter.Open(resourcesPath)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, miet.WithResources(loader))
	}
	opts = append(opts, extra...)

	eng, err := miet.New(file.NewCatalogSource(catalogPath), opts...)
	if err != nil {
		return nil, nil, err
	}
	return eng, logger, nil
}
