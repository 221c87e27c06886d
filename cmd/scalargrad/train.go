package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/dgalbally/scalargrad/dataset"
	"github.com/dgalbally/scalargrad/nn"
	"github.com/dgalbally/scalargrad/trace"
	"github.com/dgalbally/scalargrad/train"
)

// trainCmd represents the train command
var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train an MLP with the max-margin loss on a toy dataset",
	Long: `Builds the configured 2-D dataset and network, runs full-batch gradient
descent on the max-margin objective, then prints final metrics and an
ASCII rendering of the learned decision boundary.`,
	Run: func(cmd *cobra.Command, args []string) {
		log := newLogger(cmd)

		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := LoadConfig(cfgPath)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if cmd.Flags().Changed("dataset") {
			cfg.Dataset.Kind, _ = cmd.Flags().GetString("dataset")
			if err := cfg.Validate(); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
		}

		X, y, err := buildDataset(cfg.Dataset)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		sizes := append(append([]int{}, cfg.Model.Hidden...), 1)
		model, err := nn.NewMLP(2, sizes, nn.WithSeed(cfg.Model.Seed))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		log.Info("training",
			"dataset", cfg.Dataset.Kind,
			"samples", cfg.Dataset.Samples,
			"model", model.String(),
			"params", len(model.Parameters()))

		res, err := train.Fit(model, X, y,
			train.WithSteps(cfg.Train.Steps),
			train.WithAlpha(cfg.Train.Alpha),
			train.WithSchedule(train.LinearDecay(cfg.Train.LRStart, cfg.Train.LREnd)),
			train.WithOnStep(func(info train.StepInfo) error {
				if info.Step%cfg.Train.LogEvery == 0 || info.Step == cfg.Train.Steps-1 {
					log.Info("step",
						"k", info.Step,
						"loss", info.Loss,
						"accuracy", info.Accuracy,
						"lr", info.LR)
				}
				return nil
			}),
		)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("final loss %.6f, accuracy %.1f%%\n", res.FinalLoss, 100*res.FinalAccuracy)
		boundary, err := renderBoundary(model, X, y)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(boundary)

		if dotPath, _ := cmd.Flags().GetString("dot"); dotPath != "" {
			if err := exportLossGraph(model, X, y, cfg.Train.Alpha, dotPath); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			log.Info("wrote loss graph", "path", dotPath)
		}
	},
}

func init() {
	rootCmd.AddCommand(trainCmd)

	trainCmd.Flags().String("config", "", "YAML config path (defaults apply when empty)")
	trainCmd.Flags().String("dataset", "moons", "Dataset kind: moons or blobs (overrides config)")
	trainCmd.Flags().String("dot", "", "Write the final loss graph as Graphviz DOT to this path")
}

// buildDataset materializes the configured toy dataset. A zero noise
// setting is fully deterministic and needs no seed.
func buildDataset(dc DatasetConfig) ([][]float64, []float64, error) {
	opts := []dataset.Option{dataset.WithNoise(dc.Noise)}
	if dc.Noise > 0 {
		opts = append(opts, dataset.WithSeed(dc.Seed))
	}

	switch dc.Kind {
	case "moons":
		return dataset.Moons(dc.Samples, opts...)
	case "blobs":
		return dataset.Blobs(dc.Samples, opts...)
	default:
		return nil, nil, fmt.Errorf("config: dataset.kind %q: want \"moons\" or \"blobs\"", dc.Kind)
	}
}

// exportLossGraph rebuilds the objective on the trained parameters, runs
// one backward pass and writes the DOT rendering to path.
func exportLossGraph(model *nn.MLP, X [][]float64, y []float64, alpha float64, path string) error {
	loss, _, err := train.MarginLoss(model, X, y, alpha)
	if err != nil {
		return err
	}
	model.ZeroGrad()
	if err := loss.Backward(); err != nil {
		return err
	}

	out, err := trace.Dot(loss, trace.WithGraphName("loss"))
	if err != nil {
		return err
	}

	return os.WriteFile(path, []byte(out), 0o644)
}

// Boundary raster dimensions; wide and short to suit terminal cells.
const (
	boundaryCols = 60
	boundaryRows = 22
	boundaryPad  = 0.5
)

// renderBoundary rasterizes the model's decision regions over the padded
// data bounding box: '+' where the score is positive, '.' elsewhere,
// with the training samples overlaid as 'o' (+1) and 'x' (-1).
func renderBoundary(model *nn.MLP, X [][]float64, y []float64) (string, error) {
	xmin, xmax := X[0][0], X[0][0]
	ymin, ymax := X[0][1], X[0][1]
	for _, row := range X {
		xmin = math.Min(xmin, row[0])
		xmax = math.Max(xmax, row[0])
		ymin = math.Min(ymin, row[1])
		ymax = math.Max(ymax, row[1])
	}
	xmin, xmax = xmin-boundaryPad, xmax+boundaryPad
	ymin, ymax = ymin-boundaryPad, ymax+boundaryPad

	xs := floats.Span(make([]float64, boundaryCols), xmin, xmax)
	ys := floats.Span(make([]float64, boundaryRows), ymax, ymin) // top row first

	cells := make([][]byte, boundaryRows)
	for r, gy := range ys {
		cells[r] = make([]byte, boundaryCols)
		for c, gx := range xs {
			out, err := model.Forward(nn.Inputs([]float64{gx, gy}))
			if err != nil {
				return "", fmt.Errorf("boundary: %w", err)
			}
			if out[0].Data > 0 {
				cells[r][c] = '+'
			} else {
				cells[r][c] = '.'
			}
		}
	}

	// Overlay each sample on its nearest cell.
	for i, row := range X {
		c := int(math.Round((row[0] - xmin) / (xmax - xmin) * float64(boundaryCols-1)))
		r := int(math.Round((ymax - row[1]) / (ymax - ymin) * float64(boundaryRows-1)))
		if y[i] > 0 {
			cells[r][c] = 'o'
		} else {
			cells[r][c] = 'x'
		}
	}

	var sb strings.Builder
	for _, line := range cells {
		sb.Write(line)
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}
