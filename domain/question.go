package domain

type QuestionKind string

const (
	KindRadio  QuestionKind = "radio"
	KindNumber QuestionKind = "number"
	KindSlider QuestionKind = "slider"
)

type Option struct {
	Value   string             `json:"value"`
	Label   string             `json:"label"`
	Example string             `json:"example,omitempty"`
	Scores  map[string]float64 `json:"scores,omitempty"` // score-dimension name -> weight
}

type Question struct {
	ID      string       `json:"id"`
	Module  int          `json:"module"`
	Text    string       `json:"text"`
	Help    string       `json:"help,omitempty"`
	Area    string       `json:"area,omitempty"` // short dimension label, health-check questions only
	Kind    QuestionKind `json:"kind"`
	Options []Option     `json:"options,omitempty"`
	Min     float64      `json:"min,omitempty"`
	Max     float64      `json:"max,omitempty"`
	Default float64      `json:"default,omitempty"`
}
