package unitcost

import "pricingNavigator/domain"

// Blended cost per 1K tokens, approximate averages of input and output
// pricing per provider.
var llmPresets = []domain.LLMPreset{
	{Provider: "OpenAI (GPT-4o)", CostPer1K: 0.01},
	{Provider: "OpenAI (GPT-4o mini)", CostPer1K: 0.0004},
	{Provider: "Anthropic (Claude Sonnet)", CostPer1K: 0.009},
	{Provider: "Anthropic (Claude Haiku)", CostPer1K: 0.002},
	{Provider: "Open source / self-hosted", CostPer1K: 0.001},
}

// presetCostFor resolves a provider label to its blended rate. Unknown
// providers fall back to the custom default.
func presetCostFor(provider string) float64 {
	for _, p := range llmPresets {
		if p.Provider == provider {
			return p.CostPer1K
		}
	}
	return defaultCostPer1K
}
