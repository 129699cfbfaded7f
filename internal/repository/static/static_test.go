package static

import (
	"context"
	"fmt"
	"testing"

	"pricingNavigator/domain"
)

func TestQuestionRepositoryByModule(t *testing.T) {
	repo := NewQuestionRepository()
	ctx := context.Background()

	cases := []struct {
		module int
		want   int
	}{
		{module: 1, want: 5},
		{module: 2, want: 5},
		{module: 3, want: 5},
		{module: 4, want: 10},
	}

	for _, tc := range cases {
		questions, err := repo.ByModule(ctx, tc.module)
		if err != nil {
			t.Fatalf("ByModule(%d) returned error: %v", tc.module, err)
		}
		if len(questions) != tc.want {
			t.Errorf("ByModule(%d) returned %d questions, want %d", tc.module, len(questions), tc.want)
		}
		for _, q := range questions {
			if q.Module != tc.module {
				t.Errorf("question %s reports module %d, want %d", q.ID, q.Module, tc.module)
			}
		}
	}

	if _, err := repo.ByModule(ctx, 9); err == nil {
		t.Error("expected error for unknown module")
	}
}

func TestQuestionRepositoryByID(t *testing.T) {
	repo := NewQuestionRepository()
	ctx := context.Background()

	q, err := repo.ByID(ctx, "m1_q1")
	if err != nil {
		t.Fatalf("ByID returned error: %v", err)
	}
	if q.Kind != domain.KindRadio {
		t.Errorf("m1_q1 kind = %s, want radio", q.Kind)
	}
	if len(q.Options) != 3 {
		t.Errorf("m1_q1 has %d options, want 3", len(q.Options))
	}

	if _, err := repo.ByID(ctx, "m7_q1"); err == nil {
		t.Error("expected error for unknown question id")
	}
}

func TestQuestionWeightsCoverEveryDimension(t *testing.T) {
	repo := NewQuestionRepository()
	ctx := context.Background()

	questions, err := repo.ByModule(ctx, 1)
	if err != nil {
		t.Fatalf("ByModule(1) returned error: %v", err)
	}

	seen := map[string]bool{}
	for _, q := range questions {
		for _, opt := range q.Options {
			for dim := range opt.Scores {
				seen[dim] = true
			}
		}
	}

	for _, dim := range []string{domain.DimCopilot, domain.DimAgent, domain.DimService} {
		if !seen[dim] {
			t.Errorf("module 1 options never score dimension %s", dim)
		}
	}
}

func TestCompsRepositoryFindByModel(t *testing.T) {
	repo := NewCompsRepository()
	ctx := context.Background()

	for _, model := range []domain.BusinessModel{domain.ModelCopilot, domain.ModelAgent, domain.ModelService} {
		comps, err := repo.FindByModel(ctx, model)
		if err != nil {
			t.Fatalf("FindByModel(%s) returned error: %v", model, err)
		}
		if len(comps) == 0 {
			t.Errorf("no comps for model %s", model)
		}
		for _, comp := range comps {
			if comp.ModelType != model {
				t.Errorf("comp %s has model %s, want %s", comp.Name, comp.ModelType, model)
			}
		}
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll returned error: %v", err)
	}
	if len(all) != 9 {
		t.Errorf("FindAll returned %d comps, want 9", len(all))
	}
}

func TestInsightRepositoryProfilesAndActions(t *testing.T) {
	repo := NewInsightRepository()
	ctx := context.Background()

	profile, err := repo.ModelProfile(ctx, domain.ModelAgent)
	if err != nil {
		t.Fatalf("ModelProfile returned error: %v", err)
	}
	if profile.Description == "" || len(profile.Examples) == 0 {
		t.Error("agent profile is missing narrative content")
	}

	quadrant, err := repo.QuadrantProfile(ctx, domain.QuadrantDangerZone)
	if err != nil {
		t.Fatalf("QuadrantProfile returned error: %v", err)
	}
	if !quadrant.RenewalRisk {
		t.Error("danger zone should carry renewal risk")
	}

	principles, err := repo.Principles(ctx, domain.ModelCopilot)
	if err != nil {
		t.Fatalf("Principles returned error: %v", err)
	}
	if len(principles) != 3 {
		t.Errorf("copilot principles count = %d, want 3", len(principles))
	}

	for i := 1; i <= 10; i++ {
		id := fmt.Sprintf("m4_q%d", i)
		if _, err := repo.HealthAction(ctx, id); err != nil {
			t.Errorf("no health action for %s", id)
		}
	}

	if _, err := repo.ModelProfile(ctx, domain.BusinessModel("Oracle")); err == nil {
		t.Error("expected error for unknown model")
	}
}

func TestRepositoriesHonorContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewQuestionRepository().ByModule(ctx, 1); err == nil {
		t.Error("question repo ignored cancelled context")
	}
	if _, err := NewCompsRepository().FindAll(ctx); err == nil {
		t.Error("comps repo ignored cancelled context")
	}
	if _, err := NewInsightRepository().Principles(ctx, domain.ModelAgent); err == nil {
		t.Error("insight repo ignored cancelled context")
	}
}
