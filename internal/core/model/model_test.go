package model

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

const goodArtifact = `{
	"version": 1,
	"model_id": "0b7f7dd2-6b62-4f3a-9a1c-6f3f5f1c2d4e",
	"features": ["missedPeriods", "totalDisputes"],
	"coefficients": [-0.9, -0.6],
	"intercept": 2.5
}`

func writeArtifact(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tenant_risk_model.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	return path
}

func mustLoad(t *testing.T) *Artifact {
	t.Helper()
	a, err := Load(writeArtifact(t, goodArtifact))
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	return a
}

func TestLoadOK(t *testing.T) {
	a := mustLoad(t)
	if a.Version != ArtifactVersion {
		t.Fatalf("version = %d", a.Version)
	}
	if a.ModelID.String() != "0b7f7dd2-6b62-4f3a-9a1c-6f3f5f1c2d4e" {
		t.Fatalf("model id = %s", a.ModelID)
	}
	if len(a.Features) != 2 || a.Features[0] != "missedPeriods" || a.Features[1] != "totalDisputes" {
		t.Fatalf("features = %v", a.Features)
	}
}

func TestLoadFailures(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bad json", `{"version": 1,`},
		{"wrong version", `{"version": 2, "model_id": "0b7f7dd2-6b62-4f3a-9a1c-6f3f5f1c2d4e",
			"features": ["a"], "coefficients": [1], "intercept": 0}`},
		{"bad uuid", `{"version": 1, "model_id": "not-a-uuid",
			"features": ["a"], "coefficients": [1], "intercept": 0}`},
		{"no features", `{"version": 1, "model_id": "0b7f7dd2-6b62-4f3a-9a1c-6f3f5f1c2d4e",
			"features": [], "coefficients": [], "intercept": 0}`},
		{"arity mismatch", `{"version": 1, "model_id": "0b7f7dd2-6b62-4f3a-9a1c-6f3f5f1c2d4e",
			"features": ["a", "b"], "coefficients": [1], "intercept": 0}`},
		{"duplicate feature", `{"version": 1, "model_id": "0b7f7dd2-6b62-4f3a-9a1c-6f3f5f1c2d4e",
			"features": ["a", "a"], "coefficients": [1, 2], "intercept": 0}`},
		{"empty feature name", `{"version": 1, "model_id": "0b7f7dd2-6b62-4f3a-9a1c-6f3f5f1c2d4e",
			"features": [""], "coefficients": [1], "intercept": 0}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Load(writeArtifact(t, c.body)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for absent file")
	}
}

func TestPredictProbaPairSumsToOne(t *testing.T) {
	a := mustLoad(t)
	rows := []FeatureRow{
		{"missedPeriods": 0, "totalDisputes": 0},
		{"missedPeriods": 2, "totalDisputes": 1},
		{"missedPeriods": 12, "totalDisputes": 7},
	}
	for _, row := range rows {
		p, err := a.PredictProba(row)
		if err != nil {
			t.Fatalf("PredictProba(%v): %v", row, err)
		}
		if p.Good < 0 || p.Good > 1 {
			t.Fatalf("prob out of range: %v", p)
		}
		if sum := p.Bad + p.Good; math.Abs(sum-1) > 1e-9 {
			t.Fatalf("pair sums to %v", sum)
		}
	}
}

func TestPredictProbaMonotone(t *testing.T) {
	// negative coefficients: more missed periods must not raise the good prob
	a := mustLoad(t)
	prev := 2.0
	for missed := 0.0; missed <= 10; missed++ {
		p, err := a.PredictProba(FeatureRow{"missedPeriods": missed, "totalDisputes": 1})
		if err != nil {
			t.Fatalf("PredictProba: %v", err)
		}
		if p.Good > prev {
			t.Fatalf("good prob rose from %v to %v at missed=%v", prev, p.Good, missed)
		}
		prev = p.Good
	}
}

func TestPredictProbaDeterministic(t *testing.T) {
	a := mustLoad(t)
	row := FeatureRow{"missedPeriods": 5, "totalDisputes": 3}
	first, err := a.PredictProba(row)
	if err != nil {
		t.Fatalf("PredictProba: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := a.PredictProba(row)
		if err != nil {
			t.Fatalf("PredictProba: %v", err)
		}
		if again != first {
			t.Fatalf("non deterministic: %v vs %v", again, first)
		}
	}
}

func TestPredictProbaRowValidation(t *testing.T) {
	a := mustLoad(t)
	if _, err := a.PredictProba(FeatureRow{"missedPeriods": 1}); err == nil {
		t.Fatalf("expected error for short row")
	}
	if _, err := a.PredictProba(FeatureRow{
		"missedPeriods": 1, "totalDisputes": 1, "extra": 9,
	}); err == nil {
		t.Fatalf("expected error for extra feature")
	}
	if _, err := a.PredictProba(FeatureRow{"missedPeriods": 1, "wrongName": 1}); err == nil {
		t.Fatalf("expected error for wrong feature name")
	}
}

func TestStateFlag(t *testing.T) {
	if NewUnavailable().Loaded() {
		t.Fatalf("unavailable state reports loaded")
	}
	s := NewLoaded(mustLoad(t))
	if !s.Loaded() || s.Artifact() == nil {
		t.Fatalf("loaded state not usable")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("NewLoaded(nil) should panic")
		}
	}()
	NewLoaded(nil)
}
