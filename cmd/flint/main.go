// Package main provides the Flint CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/flint-ml/flint/internal/checkpoint"
	"github.com/flint-ml/flint/internal/config"
	"github.com/flint-ml/flint/internal/nn"
	"github.com/flint-ml/flint/internal/optim"
	"github.com/flint-ml/flint/internal/train"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("Flint %s\n", version)
	case "train":
		if err := runTrain(os.Args[2:]); err != nil {
			log.Fatalf("training failed: %v", err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf("Flint - reverse-mode autodiff and neural nets for Go\n")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  train      Train a classifier on synthetic blobs")
}

func runTrain(args []string) error {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (defaults apply when empty)")
	epochs := fs.Int("epochs", 0, "Number of epochs")
	batchSize := fs.Int("batch-size", 0, "Batch size")
	lr := fs.Float64("lr", 0, "Learning rate")
	seed := fs.Int64("seed", 0, "PRNG seed")
	logEvery := fs.Int("log-every", 0, "Log every N batches")
	savePath := fs.String("save", "", "Write final model weights to this .flint file")
	resumePath := fs.String("resume", "", "Load initial model weights from a .flint file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	cfg.ApplyOverrides(config.Overrides{
		Epochs:    *epochs,
		BatchSize: *batchSize,
		LR:        *lr,
		Seed:      *seed,
		LogEvery:  *logEvery,
	})
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	samples, err := train.Blobs(train.BlobsConfig{
		Samples:  cfg.Samples,
		Classes:  cfg.Classes,
		Features: cfg.Features,
		Spread:   cfg.Spread,
		Seed:     cfg.Seed,
	})
	if err != nil {
		return err
	}

	source, err := train.NewSliceSource(samples, cfg.BatchSize, cfg.Seed)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	model := nn.NewSequential(
		nn.NewLinear(cfg.Features, cfg.HiddenSize, rng),
		nn.NewReLU(),
		nn.NewLinear(cfg.HiddenSize, cfg.Classes, rng),
	)

	if *resumePath != "" {
		cp, err := checkpoint.Load(*resumePath)
		if err != nil {
			return err
		}
		if err := cp.Restore(model.Parameters()); err != nil {
			return err
		}
		log.Printf("resumed weights from %s", *resumePath)
	}

	sgd, err := optim.NewSGD(model.Parameters(), optim.Config{LR: cfg.LR})
	if err != nil {
		return err
	}

	trainer, err := train.NewTrainer(model, nn.NewCrossEntropyLoss(), sgd, source, train.Config{
		Epochs:   cfg.Epochs,
		LogEvery: cfg.LogEvery,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats, err := trainer.Run(ctx)
	if err != nil {
		return err
	}

	final := stats[len(stats)-1]
	log.Printf("finished epochs=%d final_loss=%.4f", final.Epoch, final.RunningLoss)

	if *savePath != "" {
		training := &checkpoint.Training{Epoch: final.Epoch, Loss: final.RunningLoss, LR: sgd.LR()}
		if err := checkpoint.Save(*savePath, model.Parameters(), training); err != nil {
			return err
		}
		log.Printf("saved weights to %s", *savePath)
	}
	return nil
}
