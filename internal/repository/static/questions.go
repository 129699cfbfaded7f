package static

import "pricingNavigator/domain"

// The questionnaire catalog. Option weights are the scoring coefficients:
// module 1 feeds copilot/agent/service totals, module 2 feeds the x/y axes.

var module1Questions = []domain.Question{
	{
		ID:     "m1_q1",
		Module: 1,
		Text:   "Does a human actively use your AI while it works?",
		Help:   "Copilots keep the user in the driver's seat; agents and services do the work for them.",
		Kind:   domain.KindRadio,
		Options: []domain.Option{
			{
				Value:   "yes",
				Label:   "Yes - it assists someone in real time",
				Example: "Like GitHub Copilot suggesting code as an engineer types",
				Scores:  map[string]float64{domain.DimCopilot: 3},
			},
			{
				Value:   "partial",
				Label:   "Partially - people check in on it",
				Example: "A drafting tool the user reviews between tasks",
				Scores:  map[string]float64{domain.DimCopilot: 1, domain.DimAgent: 1},
			},
			{
				Value:   "no",
				Label:   "No - it works without anyone watching",
				Example: "A pipeline that processes tickets overnight",
				Scores:  map[string]float64{domain.DimAgent: 1, domain.DimService: 1},
			},
		},
	},
	{
		ID:     "m1_q2",
		Module: 1,
		Text:   "Does your AI complete entire tasks end to end on its own?",
		Help:   "Agents are judged on outcomes delivered, not time spent in the product.",
		Kind:   domain.KindRadio,
		Options: []domain.Option{
			{
				Value:   "yes",
				Label:   "Yes - it finishes the job autonomously",
				Example: "Like Intercom Fin resolving a support ticket without a handoff",
				Scores:  map[string]float64{domain.DimAgent: 3},
			},
			{
				Value:   "partial",
				Label:   "Partially - it needs a human review step",
				Example: "The AI drafts the outcome and a person approves it",
				Scores:  map[string]float64{domain.DimAgent: 1, domain.DimCopilot: 1},
			},
			{
				Value:   "no",
				Label:   "No - it assists rather than executes",
				Example: "Suggestions and drafts the user acts on themselves",
				Scores:  map[string]float64{domain.DimCopilot: 1, domain.DimService: 1},
			},
		},
	},
	{
		ID:     "m1_q3",
		Module: 1,
		Text:   "Does your AI deliver a finished output that replaces an outside service?",
		Help:   "AI-enabled services compete with agencies, consultants, and service providers.",
		Kind:   domain.KindRadio,
		Options: []domain.Option{
			{
				Value:   "yes",
				Label:   "Yes - customers buy the output itself",
				Example: "Like EvenUp delivering a complete legal demand package",
				Scores:  map[string]float64{domain.DimService: 3},
			},
			{
				Value:   "partial",
				Label:   "Partially - the output still needs in-house polish",
				Example: "Generated content the customer's team finalizes",
				Scores:  map[string]float64{domain.DimService: 1, domain.DimAgent: 1},
			},
			{
				Value:   "no",
				Label:   "No - we sell software, not deliverables",
				Example: "Customers use the product; they don't receive work product",
				Scores:  map[string]float64{domain.DimCopilot: 1, domain.DimAgent: 1},
			},
		},
	},
	{
		ID:     "m1_q4",
		Module: 1,
		Text:   "What does the primary interaction with your product look like?",
		Kind:   domain.KindRadio,
		Options: []domain.Option{
			{
				Value:   "chat",
				Label:   "In-workflow suggestions or chat",
				Example: "Autocomplete, sidebars, chat panels inside the user's tool",
				Scores:  map[string]float64{domain.DimCopilot: 2},
			},
			{
				Value:   "automation",
				Label:   "A goal goes in, work happens in the background",
				Example: "Set the objective and the system runs the workflow",
				Scores:  map[string]float64{domain.DimAgent: 2},
			},
			{
				Value:   "output",
				Label:   "An order goes in, a deliverable comes back",
				Example: "Request a report, receive the finished report",
				Scores:  map[string]float64{domain.DimService: 2},
			},
		},
	},
	{
		ID:     "m1_q5",
		Module: 1,
		Text:   "If your AI were a person on the customer's team, what role would it play?",
		Kind:   domain.KindRadio,
		Options: []domain.Option{
			{
				Value:  "advisor",
				Label:  "An advisor guiding an expert",
				Scores: map[string]float64{domain.DimCopilot: 2},
			},
			{
				Value:  "executor",
				Label:  "An executor doing the work",
				Scores: map[string]float64{domain.DimAgent: 2},
			},
			{
				Value:  "service_provider",
				Label:  "An outside provider delivering finished work",
				Scores: map[string]float64{domain.DimService: 2},
			},
		},
	},
}

var module2Questions = []domain.Question{
	{
		ID:     "m2_q1",
		Module: 2,
		Text:   "What is the primary value your product delivers?",
		Help:   "Revenue impact commands stronger pricing than cost savings.",
		Kind:   domain.KindRadio,
		Options: []domain.Option{
			{
				Value:   "revenue",
				Label:   "Helps customers win or grow revenue",
				Example: "More qualified leads, higher conversion, faster deals",
				Scores:  map[string]float64{domain.DimX: 1.0, domain.DimY: 0.5},
			},
			{
				Value:   "cost_reduction",
				Label:   "Cuts a measurable cost line",
				Example: "Replaces agency spend or reduces headcount needs",
				Scores:  map[string]float64{domain.DimX: -1.0, domain.DimY: 0.5},
			},
			{
				Value:   "time_savings",
				Label:   "Saves people time",
				Example: "Hours saved that may or may not hit a budget line",
				Scores:  map[string]float64{domain.DimX: -0.5, domain.DimY: -0.5},
			},
		},
	},
	{
		ID:     "m2_q2",
		Module: 2,
		Text:   "Can customers measure your impact with their own data?",
		Help:   "Hard ROI means the customer's systems can prove the value without you.",
		Kind:   domain.KindRadio,
		Options: []domain.Option{
			{
				Value:  "yes",
				Label:  "Yes - the numbers are in their systems",
				Scores: map[string]float64{domain.DimX: 0, domain.DimY: 1.0},
			},
			{
				Value:  "partial",
				Label:  "Partially - some proxies exist",
				Scores: map[string]float64{domain.DimX: 0, domain.DimY: 0.25},
			},
			{
				Value:  "no",
				Label:  "No - the impact is mostly felt, not measured",
				Scores: map[string]float64{domain.DimX: 0, domain.DimY: -1.0},
			},
		},
	},
	{
		ID:     "m2_q3",
		Module: 2,
		Text:   "What happens if your product is switched off for a month?",
		Kind:   domain.KindRadio,
		Options: []domain.Option{
			{
				Value:   "lose_revenue",
				Label:   "They lose revenue almost immediately",
				Example: "Pipelines stall, campaigns stop converting",
				Scores:  map[string]float64{domain.DimX: 1.0, domain.DimY: 0.75},
			},
			{
				Value:   "slower",
				Label:   "Work gets slower or more expensive",
				Example: "The team falls back to the manual process",
				Scores:  map[string]float64{domain.DimX: -0.75, domain.DimY: 0.5},
			},
			{
				Value:  "no_pain",
				Label:  "Honestly, not much visible pain",
				Scores: map[string]float64{domain.DimX: 0, domain.DimY: -1.0},
			},
		},
	},
	{
		ID:     "m2_q4",
		Module: 2,
		Text:   "How do customers see the value you create?",
		Kind:   domain.KindRadio,
		Options: []domain.Option{
			{
				Value:  "dashboard",
				Label:  "A dashboard or report quantifies it",
				Scores: map[string]float64{domain.DimX: 0, domain.DimY: 1.0},
			},
			{
				Value:  "spreadsheet",
				Label:  "They could build the case in a spreadsheet",
				Scores: map[string]float64{domain.DimX: 0, domain.DimY: 0.5},
			},
			{
				Value:  "qualitative",
				Label:  "Qualitative feedback and anecdotes",
				Scores: map[string]float64{domain.DimX: 0, domain.DimY: -0.75},
			},
		},
	},
	{
		ID:     "m2_q5",
		Module: 2,
		Text:   "Does your product replace spend the customer already approves?",
		Help:   "Budget replacement eases procurement but frames you as a cost, not a growth driver.",
		Kind:   domain.KindRadio,
		Options: []domain.Option{
			{
				Value:  "yes",
				Label:  "Yes - it displaces an existing budget line",
				Scores: map[string]float64{domain.DimX: -0.5, domain.DimY: 0.75},
			},
			{
				Value:  "partial",
				Label:  "Partially - it sits next to existing spend",
				Scores: map[string]float64{domain.DimX: -0.25, domain.DimY: 0.0},
			},
			{
				Value:  "no",
				Label:  "No - it's net-new spend",
				Scores: map[string]float64{domain.DimX: 0.5, domain.DimY: -0.25},
			},
		},
	},
}

var module3Questions = []domain.Question{
	{
		ID:      "m3_q1",
		Module:  3,
		Text:    "What does it cost you to deliver one unit of value? ($)",
		Help:    "Use the Unit Cost Calculator if you're not sure. Include inference, human review, and infrastructure.",
		Kind:    domain.KindNumber,
		Min:     0.01,
		Default: 1.0,
	},
	{
		ID:     "m3_q2",
		Module: 3,
		Text:   "Which segment are you selling into?",
		Kind:   domain.KindRadio,
		Options: []domain.Option{
			{Value: string(domain.SegmentSMB), Label: "SMB (teams under 50)"},
			{Value: string(domain.SegmentMidMarket), Label: "Mid-market (50-1,000 employees)"},
			{Value: string(domain.SegmentEnterprise), Label: "Enterprise (1,000+)"},
		},
	},
	{
		ID:      "m3_q3",
		Module:  3,
		Text:    "Target annual deal size ($)",
		Help:    "What a typical customer would pay you per year.",
		Kind:    domain.KindSlider,
		Min:     1000,
		Max:     250000,
		Default: 15000,
	},
	{
		ID:      "m3_q4",
		Module:  3,
		Text:    "Target gross margin (%)",
		Help:    "AI companies typically run 50-65%; SaaS runs 80%+.",
		Kind:    domain.KindSlider,
		Min:     40,
		Max:     85,
		Default: 65,
	},
	{
		ID:     "m3_q5",
		Module: 3,
		Text:   "How variable is your cost per unit?",
		Help:   "High variance means a heavy unit costs many times the average one.",
		Kind:   domain.KindRadio,
		Options: []domain.Option{
			{Value: string(domain.VarianceLow), Label: "Low - costs are stable and predictable"},
			{Value: string(domain.VarianceModerate), Label: "Moderate - some spread between cheap and expensive units"},
			{Value: string(domain.VarianceHigh), Label: "High - heavy units cost many times the average"},
		},
	},
}

var module4Questions = []domain.Question{
	{ID: "m4_q1", Module: 4, Area: "AI Economics", Kind: domain.KindSlider, Min: 1, Max: 5, Default: 3,
		Text: "I understand how AI unit economics differ from traditional SaaS"},
	{ID: "m4_q2", Module: 4, Area: "Model Fit", Kind: domain.KindSlider, Min: 1, Max: 5, Default: 3,
		Text: "My pricing model matches how my product delivers value"},
	{ID: "m4_q3", Module: 4, Area: "Price Clarity", Kind: domain.KindSlider, Min: 1, Max: 5, Default: 3,
		Text: "A first-time visitor can understand my pricing in under a minute"},
	{ID: "m4_q4", Module: 4, Area: "Cost Management", Kind: domain.KindSlider, Min: 1, Max: 5, Default: 3,
		Text: "I can monitor and control my per-customer AI costs"},
	{ID: "m4_q5", Module: 4, Area: "Free→Paid", Kind: domain.KindSlider, Min: 1, Max: 5, Default: 3,
		Text: "My free-to-paid conversion is triggered by delivered value, not time"},
	{ID: "m4_q6", Module: 4, Area: "AI Metrics", Kind: domain.KindSlider, Min: 1, Max: 5, Default: 3,
		Text: "I track AI-specific metrics beyond standard SaaS metrics"},
	{ID: "m4_q7", Module: 4, Area: "Unit Economics", Kind: domain.KindSlider, Min: 1, Max: 5, Default: 3,
		Text: "I know my fully loaded cost per unit of value"},
	{ID: "m4_q8", Module: 4, Area: "Pricing Moat", Kind: domain.KindSlider, Min: 1, Max: 5, Default: 3,
		Text: "My pricing is defensible even against competitors on the same models"},
	{ID: "m4_q9", Module: 4, Area: "Sustainability", Kind: domain.KindSlider, Min: 1, Max: 5, Default: 3,
		Text: "My pricing survives cost spikes and usage surges"},
	{ID: "m4_q10", Module: 4, Area: "Scalability", Kind: domain.KindSlider, Min: 1, Max: 5, Default: 3,
		Text: "My pricing works without manual intervention as we scale"},
}
