package domain

// Sentiment is the 3-way label produced by each scoring method.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// Urgency summarizes how strongly the two scoring methods agree on
// negativity or positivity.
type Urgency string

const (
	UrgencyHigh   Urgency = "High"
	UrgencyMedium Urgency = "Medium"
	UrgencyLow    Urgency = "Low"
)

// PolarityScores is the raw output of the polarity/subjectivity oracle.
// Polarity is nominally in [-1, 1], Subjectivity in [0, 1].
type PolarityScores struct {
	Polarity     float64
	Subjectivity float64
}

// IntensityScores is the raw output of the intensity oracle. Compound is
// nominally in [-1, 1]; the three class scores each sit in [0, 1] and sum
// to roughly one.
type IntensityScores struct {
	Compound float64
	Positive float64
	Negative float64
	Neutral  float64
}

// SentimentResult carries both method outputs plus the reconciled urgency
// for exactly one article.
type SentimentResult struct {
	PatternLabel Sentiment
	Polarity     float64
	Subjectivity float64

	VaderLabel Sentiment
	Compound   float64
	Positive   float64
	Negative   float64
	Neutral    float64

	Urgency Urgency
}

// NeutralResult is the documented default attached when either oracle fails:
// every label neutral, every score zero except the neutral intensity.
func NeutralResult() SentimentResult {
	return SentimentResult{
		PatternLabel: SentimentNeutral,
		VaderLabel:   SentimentNeutral,
		Neutral:      1.0,
		Urgency:      UrgencyMedium,
	}
}
