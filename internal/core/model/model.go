// Package model loads and evaluates the tenant risk classifier artifact.
// The artifact is a versioned JSON export of a binary logistic regression
// produced by the training pipeline; this package only consumes it
package model

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/google/uuid"
)

// ArtifactVersion is the only artifact schema version this build understands
const ArtifactVersion = 1

// FeatureRow is a single named input row for inference
type FeatureRow map[string]float64

// Probs is the per-row class probability pair. Bad and Good sum to 1
type Probs struct {
	Bad  float64
	Good float64
}

type rawArtifact struct {
	Version      int       `json:"version"`
	ModelID      string    `json:"model_id"`
	Features     []string  `json:"features"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

// Artifact is the compiled classifier handle. Immutable after Load
type Artifact struct {
	Version   int
	ModelID   uuid.UUID
	Features  []string
	coefs     []float64
	intercept float64
}

// Load reads and validates a serialized artifact from path
func Load(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("model: read %s: %w", path, err)
	}

	var ra rawArtifact
	if err := json.Unmarshal(data, &ra); err != nil {
		return nil, fmt.Errorf("model: parse %s: %w", path, err)
	}
	if ra.Version != ArtifactVersion {
		return nil, fmt.Errorf("model: unsupported artifact version %d (want %d)", ra.Version, ArtifactVersion)
	}
	id, err := uuid.Parse(ra.ModelID)
	if err != nil {
		return nil, fmt.Errorf("model: invalid model_id %q: %w", ra.ModelID, err)
	}
	if len(ra.Features) == 0 {
		return nil, fmt.Errorf("model: artifact declares no features")
	}
	if len(ra.Features) != len(ra.Coefficients) {
		return nil, fmt.Errorf(
			"model: %d features but %d coefficients", len(ra.Features), len(ra.Coefficients),
		)
	}
	seen := make(map[string]struct{}, len(ra.Features))
	for _, f := range ra.Features {
		if f == "" {
			return nil, fmt.Errorf("model: empty feature name")
		}
		if _, dup := seen[f]; dup {
			return nil, fmt.Errorf("model: duplicate feature %q", f)
		}
		seen[f] = struct{}{}
	}
	for i, c := range ra.Coefficients {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("model: coefficient %d is not finite", i)
		}
	}

	return &Artifact{
		Version:   ra.Version,
		ModelID:   id,
		Features:  append([]string(nil), ra.Features...),
		coefs:     append([]float64(nil), ra.Coefficients...),
		intercept: ra.Intercept,
	}, nil
}

// PredictProba evaluates the classifier on a single row.
// Rows must supply a value for every declared feature; extra keys are rejected
// so a caller drifting from the training schema fails loudly
func (a *Artifact) PredictProba(row FeatureRow) (Probs, error) {
	if len(row) != len(a.Features) {
		return Probs{}, fmt.Errorf(
			"model: row has %d features, artifact wants %d", len(row), len(a.Features),
		)
	}
	z := a.intercept
	for i, name := range a.Features {
		v, ok := row[name]
		if !ok {
			return Probs{}, fmt.Errorf("model: row missing feature %q", name)
		}
		z += a.coefs[i] * v
	}
	good := sigmoid(z)
	return Probs{Bad: 1 - good, Good: good}, nil
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
