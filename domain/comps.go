package domain

type Comp struct {
	Name          string        `json:"name"`
	ModelType     BusinessModel `json:"model_type"`
	PricingModel  string        `json:"pricing_model"`
	PricingDetail string        `json:"pricing_detail"`
	ValueDriver   string        `json:"value_driver"`
}
