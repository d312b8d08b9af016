// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/coocvec"
	"github.com/poiesic/coocvec/core"
	"github.com/poiesic/coocvec/pipeline"
	"github.com/poiesic/coocvec/tabular"
)

func main() {
	app := &cli.App{
		Name:  "coocvec",
		Usage: "Latent co-occurrence embeddings for categorical columns",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "compute",
				Usage:  "Compute feature frames for a train/test CSV pair",
				Action: computeCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "train",
						Usage:    "Path to the train split CSV",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "test",
						Usage:    "Path to the test split CSV",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "feature",
						Aliases: []string{"f"},
						Usage:   "Feature to compute, or 'all'",
						Value:   "all",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Worker pool size for pairwise fitting",
						Value: pipeline.DefaultWorkers,
					},
					&cli.Int64Flag{
						Name:  "seed",
						Usage: "Random seed for factorization",
						Value: pipeline.DefaultSeed,
					},
				},
			},
			{
				Name:   "list",
				Usage:  "List stored feature frames",
				Action: listCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
				},
			},
			{
				Name:   "drop",
				Usage:  "Drop every stored frame of a feature",
				Action: dropCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "feature",
						Aliases:  []string{"f"},
						Usage:    "Feature name to drop",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func computeCommand(c *cli.Context) error {
	ctx := context.Background()

	svc, err := coocvec.NewService(c.String("db"),
		coocvec.WithWorkers(c.Int("workers")),
		coocvec.WithSeed(c.Int64("seed")))
	if err != nil {
		return fmt.Errorf("failed to open service: %w", err)
	}
	defer svc.Close()

	train, err := tabular.Load(c.String("train"), core.CategoricalColumns)
	if err != nil {
		return fmt.Errorf("failed to load train split: %w", err)
	}
	test, err := tabular.Load(c.String("test"), core.CategoricalColumns)
	if err != nil {
		return fmt.Errorf("failed to load test split: %w", err)
	}

	features := []string{c.String("feature")}
	if features[0] == "all" {
		features = svc.Features()
	}

	for _, feature := range features {
		result, err := svc.Compute(ctx, feature, train, test)
		if err != nil {
			return fmt.Errorf("failed to compute %s: %w", feature, err)
		}
		source := "computed"
		if result.FromStore {
			source = "stored"
		}
		fmt.Printf("%s: %d columns, %d train rows, %d test rows (%s)\n",
			feature, result.TrainFrame.Width(),
			result.TrainFrame.Rows(), result.TestFrame.Rows(), source)
	}
	return nil
}

func listCommand(c *cli.Context) error {
	svc, err := coocvec.NewService(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open service: %w", err)
	}
	defer svc.Close()

	keys, err := svc.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list frames: %w", err)
	}
	if len(keys) == 0 {
		fmt.Println("no stored frames")
		return nil
	}
	for _, key := range keys {
		fmt.Printf("%s dataset=%016x split=%s\n", key.Feature, uint64(key.Dataset), key.Split)
	}
	return nil
}

func dropCommand(c *cli.Context) error {
	svc, err := coocvec.NewService(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open service: %w", err)
	}
	defer svc.Close()

	deleted, err := svc.Drop(context.Background(), c.String("feature"))
	if err != nil {
		return fmt.Errorf("failed to drop %s: %w", c.String("feature"), err)
	}
	fmt.Printf("dropped %d frames\n", deleted)
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
