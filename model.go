package regression

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/goccy/go-json"

	"github.com/keonwoo98/ft-linear-regression/metrics"
	"github.com/keonwoo98/ft-linear-regression/stats"
)

// NormalizationStats stores the per-feature statistics used at training time.
// Denormalized parameters are only valid with the exact stats pair that
// produced them; no runtime check guards against mixing stats from a different
// dataset.
type NormalizationStats struct {
	Km    stats.Stats `json:"km"`
	Price stats.Stats `json:"price"`
}

// Model represents a serializable format of a fitted regression storing the
// real-world parameters, the normalization statistics, and the fit scores.
// The Trained flag distinguishes a genuine (0, 0) fit from the untrained
// sentinel.
type Model struct {
	Theta0        float64             `json:"theta0"`
	Theta1        float64             `json:"theta1"`
	Trained       bool                `json:"trained"`
	Normalization *NormalizationStats `json:"normalization,omitempty"`
	Scores        *metrics.Scores     `json:"scores,omitempty"`
}

// SaveModel writes the model record to path, creating parent directories as
// needed. A write failure is returned to the caller; the in-memory model
// remains valid either way.
func SaveModel(path string, m Model) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("unable to create model directory, %w", err)
		}
	}

	out, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to serialize model, %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("unable to write model file, %w", err)
	}
	return nil
}

// LoadModel reads a model record from path. A missing file, an unreadable
// file, or malformed contents all degrade to the untrained sentinel rather
// than returning an error; callers branch on Model.Trained.
func LoadModel(path string) Model {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Model{}
	}

	var m Model
	if err := json.Unmarshal(contents, &m); err != nil {
		return Model{}
	}
	return m
}

// CostHistoryRecord is the on-disk format of the per-iteration cost trace
// produced by training and consumed by the visualization tooling.
type CostHistoryRecord struct {
	CostHistory []float64 `json:"cost_history"`
}

// SaveCostHistory writes the cost trace record to path, creating parent
// directories as needed.
func SaveCostHistory(path string, costHistory []float64) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("unable to create cost history directory, %w", err)
		}
	}

	out, err := json.MarshalIndent(CostHistoryRecord{CostHistory: costHistory}, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to serialize cost history, %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("unable to write cost history file, %w", err)
	}
	return nil
}

// LoadCostHistory reads a cost trace record from path. A missing or malformed
// record degrades to nil.
func LoadCostHistory(path string) []float64 {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var rec CostHistoryRecord
	if err := json.Unmarshal(contents, &rec); err != nil {
		return nil
	}
	return rec.CostHistory
}

// TablePrint writes a human readable summary of the model record.
func (m Model) TablePrint(w io.Writer) error {
	if !m.Trained {
		_, err := fmt.Fprintln(w, "Model: not trained")
		return err
	}

	tbl := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tbl, "Theta0:\t%.4f\t\n", m.Theta0); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tbl, "Theta1:\t%.8f\t\n", m.Theta1); err != nil {
		return err
	}
	if m.Normalization != nil {
		if _, err := fmt.Fprintf(tbl, "Mileage:\tμ=%.2f σ=%.2f\t\n", m.Normalization.Km.Mean, m.Normalization.Km.Std); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(tbl, "Price:\tμ=%.2f σ=%.2f\t\n", m.Normalization.Price.Mean, m.Normalization.Price.Std); err != nil {
			return err
		}
	}
	if m.Scores != nil {
		if _, err := fmt.Fprintf(tbl, "Scores:\tR2: %.4f MAE: %.3f RMSE: %.3f MAPE: %.2f%%\t\n",
			m.Scores.R2, m.Scores.MAE, m.Scores.RMSE, m.Scores.MAPE); err != nil {
			return err
		}
	}
	return tbl.Flush()
}
