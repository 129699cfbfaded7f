package rest

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricingNavigator/domain"
)

type stubClassifierService struct {
	answers        map[string]string
	classification domain.Classification
	breakdown      domain.ClassificationBreakdown
	profileModel   domain.BusinessModel
	profile        domain.ModelProfile
	err            error
}

func (s *stubClassifierService) Classify(ctx context.Context, answers map[string]string) (domain.Classification, error) {
	s.answers = answers
	return s.classification, s.err
}

func (s *stubClassifierService) DebugClassify(ctx context.Context, answers map[string]string) (domain.ClassificationBreakdown, error) {
	s.answers = answers
	return s.breakdown, s.err
}

func (s *stubClassifierService) Profile(ctx context.Context, model domain.BusinessModel) (domain.ModelProfile, error) {
	s.profileModel = model
	return s.profile, s.err
}

func TestClassify(t *testing.T) {
	stub := &stubClassifierService{
		classification: domain.Classification{Model: domain.ModelCopilot, Confidence: 72.7},
	}
	h := NewClassifierHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/classifier/classify", `{"answers": {"m1_q1": "yes"}}`)

	require.NoError(t, h.Classify(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Copilot"`)
	assert.Equal(t, "yes", stub.answers["m1_q1"])
}

func TestClassifyRequiresAnswers(t *testing.T) {
	h := NewClassifierHandler(&stubClassifierService{})

	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/classifier/classify", `{}`)

	require.NoError(t, h.Classify(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClassifyServiceError(t *testing.T) {
	h := NewClassifierHandler(&stubClassifierService{err: errors.New("load classifier questions: boom")})

	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/classifier/classify", `{"answers": {}}`)

	require.NoError(t, h.Classify(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetProfileMapsSlug(t *testing.T) {
	stub := &stubClassifierService{profile: domain.ModelProfile{Model: domain.ModelService}}
	h := NewClassifierHandler(stub)

	c, rec := newJSONContext(t, http.MethodGet, "/api/v1/classifier/profiles/service", "")
	c.SetParamNames("model")
	c.SetParamValues("service")

	require.NoError(t, h.GetProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.ModelService, stub.profileModel)
}

func TestGetProfileUnknownModel(t *testing.T) {
	h := NewClassifierHandler(&stubClassifierService{})

	c, rec := newJSONContext(t, http.MethodGet, "/api/v1/classifier/profiles/saas", "")
	c.SetParamNames("model")
	c.SetParamValues("saas")

	require.NoError(t, h.GetProfile(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown business model")
}

type stubValueMapService struct {
	position domain.ValuePosition
	profiles []domain.QuadrantProfile
	err      error
}

func (s *stubValueMapService) MapPosition(ctx context.Context, answers map[string]string) (domain.ValuePosition, error) {
	return s.position, s.err
}

func (s *stubValueMapService) Profiles(ctx context.Context) ([]domain.QuadrantProfile, error) {
	return s.profiles, s.err
}

func TestMapPosition(t *testing.T) {
	stub := &stubValueMapService{
		position: domain.ValuePosition{X: 0.5, Y: 0.6, Quadrant: domain.QuadrantRevenueEngine},
	}
	h := NewValueMapHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/value-map/position", `{"answers": {"m2_q1": "revenue"}}`)

	require.NoError(t, h.MapPosition(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Revenue Engine"`)
}

func TestMapPositionRequiresAnswers(t *testing.T) {
	h := NewValueMapHandler(&stubValueMapService{})

	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/value-map/position", `{}`)

	require.NoError(t, h.MapPosition(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetQuadrants(t *testing.T) {
	stub := &stubValueMapService{
		profiles: []domain.QuadrantProfile{{Quadrant: domain.QuadrantDangerZone, RenewalRisk: true}},
	}
	h := NewValueMapHandler(stub)

	c, rec := newJSONContext(t, http.MethodGet, "/api/v1/value-map/quadrants", "")

	require.NoError(t, h.GetQuadrants(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Danger Zone"`)
}

type stubPricingService struct {
	model          domain.BusinessModel
	quadrant       domain.Quadrant
	variance       domain.CostVariance
	inputs         domain.PricingInputs
	formula        domain.PricingFormula
	recommendation domain.PricingRecommendation
	plan           domain.PricingPlan
	err            error
}

func (s *stubPricingService) GenerateFormula(ctx context.Context, in domain.PricingInputs) (domain.PricingFormula, error) {
	s.inputs = in
	return s.formula, s.err
}

func (s *stubPricingService) Recommend(ctx context.Context, model domain.BusinessModel, quadrant domain.Quadrant, variance domain.CostVariance) (domain.PricingRecommendation, error) {
	s.model, s.quadrant, s.variance = model, quadrant, variance
	return s.recommendation, s.err
}

func (s *stubPricingService) Plan(ctx context.Context, model domain.BusinessModel, quadrant domain.Quadrant, variance domain.CostVariance, in domain.PricingInputs) (domain.PricingPlan, error) {
	s.model, s.quadrant, s.variance, s.inputs = model, quadrant, variance, in
	return s.plan, s.err
}

func TestGenerateFormula(t *testing.T) {
	stub := &stubPricingService{
		formula: domain.PricingFormula{ModelName: "Hybrid (Base + Usage)", PlatformFeeAnnual: 12000},
	}
	h := NewPricingHandler(stub)

	body := `{"cost_per_unit": 2.5, "target_margin": 70, "deal_size": 62500, "formula_type": "hybrid"}`
	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/pricing/formula", body)

	require.NoError(t, h.GenerateFormula(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hybrid (Base + Usage)")
	assert.Equal(t, domain.FormulaHybrid, stub.inputs.FormulaType)
	assert.Equal(t, 62500.0, stub.inputs.DealSize)
}

func TestGenerateFormulaRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "zero cost",
			body: `{"cost_per_unit": 0, "target_margin": 65, "deal_size": 1000, "formula_type": "hybrid"}`,
		},
		{
			name: "margin above ceiling",
			body: `{"cost_per_unit": 1, "target_margin": 90, "deal_size": 1000, "formula_type": "hybrid"}`,
		},
		{
			name: "unknown formula type",
			body: `{"cost_per_unit": 1, "target_margin": 65, "deal_size": 1000, "formula_type": "flat"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewPricingHandler(&stubPricingService{})

			c, rec := newJSONContext(t, http.MethodPost, "/api/v1/pricing/formula", tc.body)

			require.NoError(t, h.GenerateFormula(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestRecommendMapsSlugs(t *testing.T) {
	stub := &stubPricingService{
		recommendation: domain.PricingRecommendation{ModelName: "Outcome-based", FormulaType: domain.FormulaOutcome},
	}
	h := NewPricingHandler(stub)

	body := `{"model": "agent", "quadrant": "danger_zone", "cost_variance": "high"}`
	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/pricing/recommendation", body)

	require.NoError(t, h.Recommend(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.ModelAgent, stub.model)
	assert.Equal(t, domain.QuadrantDangerZone, stub.quadrant)
	assert.Equal(t, domain.VarianceHigh, stub.variance)
}

func TestPlanRequiresPricingInputs(t *testing.T) {
	h := NewPricingHandler(&stubPricingService{})

	body := `{"model": "agent", "quadrant": "revenue_engine", "cost_variance": "low"}`
	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/pricing/plan", body)

	require.NoError(t, h.Plan(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlan(t *testing.T) {
	stub := &stubPricingService{
		plan: domain.PricingPlan{
			BusinessModel:  domain.ModelCopilot,
			Quadrant:       domain.QuadrantRevenueEngine,
			Recommendation: domain.PricingRecommendation{ModelName: "Per-seat + Feature Tiers"},
		},
	}
	h := NewPricingHandler(stub)

	body := `{"model": "copilot", "quadrant": "revenue_engine", "cost_variance": "low",
		"cost_per_unit": 1, "target_margin": 65, "deal_size": 62500, "customer_segment": "mid_market"}`
	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/pricing/plan", body)

	require.NoError(t, h.Plan(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Per-seat + Feature Tiers")
	assert.Equal(t, domain.SegmentMidMarket, stub.inputs.CustomerSegment)
}

type stubHealthService struct {
	scores map[string]int
	score  domain.HealthScore
	report domain.HealthReport
	err    error
}

func (s *stubHealthService) Score(ctx context.Context, scores map[string]int) (domain.HealthScore, error) {
	s.scores = scores
	return s.score, s.err
}

func (s *stubHealthService) Report(ctx context.Context, scores map[string]int) (domain.HealthReport, error) {
	s.scores = scores
	return s.report, s.err
}

func TestHealthScore(t *testing.T) {
	stub := &stubHealthService{
		score: domain.HealthScore{Percentage: 64.0, Label: "Developing"},
	}
	h := NewHealthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/health-check/score", `{"scores": {"m4_q1": 4, "m4_q2": 2}}`)

	require.NoError(t, h.Score(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Developing")
	assert.Equal(t, 2, stub.scores["m4_q2"])
}

func TestHealthScoreRejectsOutOfRange(t *testing.T) {
	h := NewHealthHandler(&stubHealthService{})

	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/health-check/score", `{"scores": {"m4_q1": 0}}`)

	require.NoError(t, h.Score(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthReport(t *testing.T) {
	stub := &stubHealthService{
		report: domain.HealthReport{
			HealthScore: domain.HealthScore{Percentage: 80.0, Label: "Strong"},
			Priorities: []domain.PriorityAction{
				{QuestionID: "m4_q4", Area: "Cost Management", Score: 1, Action: "Instrument your cost per unit."},
			},
		},
	}
	h := NewHealthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/health-check/report", `{"scores": {"m4_q4": 1}}`)

	require.NoError(t, h.Report(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cost Management")
}

type stubUnitCostService struct {
	inputs    domain.UnitCostInputs
	presets   []domain.LLMPreset
	breakdown domain.UnitCostBreakdown
	err       error
}

func (s *stubUnitCostService) Presets(ctx context.Context) ([]domain.LLMPreset, error) {
	return s.presets, s.err
}

func (s *stubUnitCostService) Calculate(ctx context.Context, in domain.UnitCostInputs) (domain.UnitCostBreakdown, error) {
	s.inputs = in
	return s.breakdown, s.err
}

type stubEconomicsService struct {
	inputs   domain.EconomicsInputs
	snapshot domain.EconomicsSnapshot
	err      error
}

func (s *stubEconomicsService) Snapshot(ctx context.Context, in domain.EconomicsInputs) (domain.EconomicsSnapshot, error) {
	s.inputs = in
	return s.snapshot, s.err
}

func TestCalculateUnitCost(t *testing.T) {
	stub := &stubUnitCostService{
		breakdown: domain.UnitCostBreakdown{TotalCost: 1.1933, MinimumPrice: 3.41},
	}
	h := NewToolsHandler(stub, &stubEconomicsService{})

	body := `{"mode": "tokens", "provider": "OpenAI (GPT-4o)", "tokens_per_interaction": 2000, "calls_per_unit": 3}`
	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/tools/unit-cost", body)

	require.NoError(t, h.CalculateUnitCost(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "3.41")
	assert.Equal(t, domain.InferenceByTokens, stub.inputs.Mode)
	assert.Equal(t, 2000.0, stub.inputs.TokensPerInteraction)
}

func TestCalculateUnitCostRequiresMode(t *testing.T) {
	h := NewToolsHandler(&stubUnitCostService{}, &stubEconomicsService{})

	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/tools/unit-cost", `{"tokens_per_interaction": 2000}`)

	require.NoError(t, h.CalculateUnitCost(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPresets(t *testing.T) {
	stub := &stubUnitCostService{
		presets: []domain.LLMPreset{{Provider: "OpenAI (GPT-4o)", CostPer1K: 0.01}},
	}
	h := NewToolsHandler(stub, &stubEconomicsService{})

	c, rec := newJSONContext(t, http.MethodGet, "/api/v1/tools/llm-presets", "")

	require.NoError(t, h.GetPresets(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "OpenAI (GPT-4o)")
}

func TestUnitEconomics(t *testing.T) {
	stub := &stubEconomicsService{
		snapshot: domain.EconomicsSnapshot{GrossMargin: 66.7, Standing: domain.StandingHealthy},
	}
	h := NewToolsHandler(&stubUnitCostService{}, stub)

	body := `{"cost_per_unit": 1, "price_per_unit": 3, "units_per_customer": 100, "customers": 10}`
	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/tools/unit-economics", body)

	require.NoError(t, h.UnitEconomics(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "66.7")
	assert.Equal(t, 100, stub.inputs.UnitsPerCustomer)
}

func TestUnitEconomicsRejectsZeroCustomers(t *testing.T) {
	h := NewToolsHandler(&stubUnitCostService{}, &stubEconomicsService{})

	body := `{"cost_per_unit": 1, "price_per_unit": 3, "units_per_customer": 100, "customers": 0}`
	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/tools/unit-economics", body)

	require.NoError(t, h.UnitEconomics(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type stubCatalogService struct {
	module    int
	model     domain.BusinessModel
	questions []domain.Question
	comps     []domain.Comp
	profiles  []domain.ModelProfile
	err       error
}

func (s *stubCatalogService) Questions(ctx context.Context, module int) ([]domain.Question, error) {
	s.module = module
	return s.questions, s.err
}

func (s *stubCatalogService) Comps(ctx context.Context, model domain.BusinessModel) ([]domain.Comp, error) {
	s.model = model
	return s.comps, s.err
}

func (s *stubCatalogService) ModelProfiles(ctx context.Context) ([]domain.ModelProfile, error) {
	return s.profiles, s.err
}

func TestGetQuestions(t *testing.T) {
	stub := &stubCatalogService{
		questions: []domain.Question{{ID: "m4_q1", Module: 4, Area: "AI Economics"}},
	}
	h := NewCatalogHandler(stub)

	c, rec := newJSONContext(t, http.MethodGet, "/api/v1/catalog/questions?module=4", "")

	require.NoError(t, h.GetQuestions(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4, stub.module)
	assert.Contains(t, rec.Body.String(), "m4_q1")
}

func TestGetQuestionsRejectsUnknownModule(t *testing.T) {
	for _, target := range []string{
		"/api/v1/catalog/questions",
		"/api/v1/catalog/questions?module=0",
		"/api/v1/catalog/questions?module=9",
	} {
		h := NewCatalogHandler(&stubCatalogService{})

		c, rec := newJSONContext(t, http.MethodGet, target, "")

		require.NoError(t, h.GetQuestions(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestGetComps(t *testing.T) {
	stub := &stubCatalogService{
		comps: []domain.Comp{{Name: "DeepL", ModelType: domain.ModelCopilot}},
	}
	h := NewCatalogHandler(stub)

	c, rec := newJSONContext(t, http.MethodGet, "/api/v1/catalog/comps?model=copilot", "")

	require.NoError(t, h.GetComps(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.ModelCopilot, stub.model)
	assert.Contains(t, rec.Body.String(), "DeepL")
}

func TestGetCompsDefaultsToAll(t *testing.T) {
	stub := &stubCatalogService{}
	h := NewCatalogHandler(stub)

	c, rec := newJSONContext(t, http.MethodGet, "/api/v1/catalog/comps", "")

	require.NoError(t, h.GetComps(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.BusinessModel(""), stub.model)
}

func TestGetModels(t *testing.T) {
	stub := &stubCatalogService{
		profiles: []domain.ModelProfile{{Model: domain.ModelAgent}},
	}
	h := NewCatalogHandler(stub)

	c, rec := newJSONContext(t, http.MethodGet, "/api/v1/catalog/models", "")

	require.NoError(t, h.GetModels(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Agent"`)
}
