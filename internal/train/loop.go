// Package train wires the model, loss, optimizer, and data source into a
// per-batch training loop.
package train

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/flint-ml/flint/internal/autograd"
	"github.com/flint-ml/flint/internal/metrics"
	"github.com/flint-ml/flint/internal/nn"
	"github.com/flint-ml/flint/internal/optim"
)

// Criterion computes a scalar loss node from model outputs and labels.
// Satisfied by nn.CrossEntropyLoss and nn.NLLLoss.
type Criterion interface {
	Forward(outputs *autograd.Node[float32], labels []int) (*autograd.Node[float32], error)
}

// Config captures the knobs required by the training loop.
type Config struct {
	Epochs    int  // Number of full passes over the source
	LogEvery  int  // Log a metrics snapshot every N batches (default 50)
	Snapshots bool // Attach parameter snapshots to batch events
}

// ParamState is a read-only copy of one parameter's value and gradient,
// taken after the optimizer step.
type ParamState struct {
	Name  string
	Value []float32
	Grad  []float32
}

// BatchEvent reports one completed training step to an external observer.
type BatchEvent struct {
	Epoch  int
	Step   int // 1-based within the epoch
	Loss   float64
	Params []ParamState // nil unless Config.Snapshots is set
}

// Hook receives a BatchEvent after every optimizer step. The trainer
// performs no I/O beyond the standard logger; plotting and persistence
// belong to the hook.
type Hook func(event BatchEvent)

// EpochStats summarizes one epoch.
type EpochStats struct {
	Epoch       int
	Batches     int
	RunningLoss float64 // Mean batch loss over the epoch
}

// Trainer runs the forward → loss → backward → step cycle over a Source.
//
// The computation graph built by each forward pass is exclusively owned
// by that step and is unreachable afterwards; only parameter buffers
// persist across steps, and only the optimizer mutates them.
type Trainer struct {
	model     nn.Module
	criterion Criterion
	optimizer optim.Optimizer
	source    Source
	config    Config
	hook      Hook
}

// NewTrainer creates a training loop over the given collaborators.
func NewTrainer(model nn.Module, criterion Criterion, optimizer optim.Optimizer, source Source, config Config) (*Trainer, error) {
	if model == nil || criterion == nil || optimizer == nil || source == nil {
		return nil, fmt.Errorf("trainer: model, criterion, optimizer, and source are all required")
	}
	if config.Epochs <= 0 {
		return nil, fmt.Errorf("trainer: epochs must be > 0, got %d", config.Epochs)
	}
	if config.LogEvery <= 0 {
		config.LogEvery = 50
	}
	return &Trainer{
		model:     model,
		criterion: criterion,
		optimizer: optimizer,
		source:    source,
		config:    config,
	}, nil
}

// SetHook registers an observer for per-batch events.
func (t *Trainer) SetHook(hook Hook) {
	t.hook = hook
}

// Run executes the configured number of epochs and returns per-epoch stats.
//
// The context is consulted between batches only; a single forward/backward
// step always runs to completion.
func (t *Trainer) Run(ctx context.Context) ([]EpochStats, error) {
	runID := uuid.NewString()
	stats := make([]EpochStats, 0, t.config.Epochs)
	var window metrics.Window

	for epoch := 1; epoch <= t.config.Epochs; epoch++ {
		t.source.Reset()

		var epochLoss float64
		batches := 0

		for {
			select {
			case <-ctx.Done():
				return stats, ctx.Err()
			default:
			}

			batch, ok := t.source.Next()
			if !ok {
				break
			}

			start := time.Now()
			loss, err := t.step(batch)
			if err != nil {
				return stats, fmt.Errorf("epoch %d batch %d: %w", epoch, batches+1, err)
			}
			window.Record(len(batch.Labels), time.Since(start), loss)

			epochLoss += loss
			batches++

			if t.hook != nil {
				t.hook(t.batchEvent(epoch, batches, loss))
			}
			if batches%t.config.LogEvery == 0 {
				snap := window.Snapshot()
				log.Printf("run=%s epoch=%d batch=%d loss=%.4f mean_loss=%.4f samples_per_sec=%.1f step_ms=%.2f",
					runID, epoch, batches, snap.LastLoss, snap.MeanLoss, snap.SamplesPerSec, snap.AvgStepMS)
			}
		}

		if batches == 0 {
			return stats, fmt.Errorf("epoch %d: source produced no batches", epoch)
		}

		es := EpochStats{
			Epoch:       epoch,
			Batches:     batches,
			RunningLoss: epochLoss / float64(batches),
		}
		stats = append(stats, es)
		log.Printf("run=%s epoch=%d done batches=%d running_loss=%.4f", runID, epoch, batches, es.RunningLoss)
	}

	return stats, nil
}

// step runs one zero-grad → forward → loss → backward → step cycle.
func (t *Trainer) step(batch Batch) (float64, error) {
	t.optimizer.ZeroGrad()

	outputs, err := t.model.Forward(autograd.Constant(batch.Inputs))
	if err != nil {
		return 0, fmt.Errorf("forward: %w", err)
	}

	loss, err := t.criterion.Forward(outputs, batch.Labels)
	if err != nil {
		return 0, fmt.Errorf("loss: %w", err)
	}

	if err := autograd.Backward(loss); err != nil {
		return 0, fmt.Errorf("backward: %w", err)
	}

	if err := t.optimizer.Step(); err != nil {
		return 0, fmt.Errorf("step: %w", err)
	}

	return float64(loss.Value().Item()), nil
}

// batchEvent assembles the observer event, copying parameter state when
// snapshots are enabled so observers can never mutate live buffers.
func (t *Trainer) batchEvent(epoch, step int, loss float64) BatchEvent {
	event := BatchEvent{Epoch: epoch, Step: step, Loss: loss}
	if !t.config.Snapshots {
		return event
	}

	for _, p := range t.model.Parameters() {
		state := ParamState{Name: p.Name()}
		state.Value = append(state.Value, p.Value().Data()...)
		if p.Grad() != nil {
			state.Grad = append(state.Grad, p.Grad().Data()...)
		}
		event.Params = append(event.Params, state)
	}
	return event
}
