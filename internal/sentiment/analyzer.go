package sentiment

import "github.com/jonreiter/govader"

// Score is a VADER polarity breakdown. Compound is the normalized sum in
// [-1, 1]; the component scores are proportions of the text.
type Score struct {
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Positive float64 `json:"positive"`
	Compound float64 `json:"compound"`
}

// Analyzer is a stateless on-demand scorer; nothing it computes is
// persisted or fed back into the pipeline.
type Analyzer struct {
	vader *govader.SentimentIntensityAnalyzer
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{vader: govader.NewSentimentIntensityAnalyzer()}
}

func (a *Analyzer) Analyze(text string) Score {
	s := a.vader.PolarityScores(text)
	return Score{
		Negative: s.Negative,
		Neutral:  s.Neutral,
		Positive: s.Positive,
		Compound: s.Compound,
	}
}
