package domain

type HealthScore struct {
	Percentage  float64  `json:"percentage"` // 0..100, 1 decimal
	Label       string   `json:"label"`
	PriorityIDs []string `json:"priority_ids"` // 3 lowest-scored question ids, ascending
}

type PriorityAction struct {
	QuestionID string `json:"question_id"`
	Area       string `json:"area"`
	Question   string `json:"question"`
	Score      int    `json:"score"`
	Action     string `json:"action"`
}

type AreaScore struct {
	QuestionID string `json:"question_id"`
	Area       string `json:"area"`
	Score      int    `json:"score"`
}

type HealthReport struct {
	HealthScore
	Areas      []AreaScore      `json:"areas"`
	Priorities []PriorityAction `json:"priorities"`
	AllHigh    bool             `json:"all_high"` // every score >= 4, no critical gaps
}
