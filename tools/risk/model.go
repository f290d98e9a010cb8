package risk

import "strings"

// Level grades a single risk category.
type Level = string

const (
	LowLevel    Level = "low"
	MediumLevel Level = "medium"
	HighLevel   Level = "high"
)

// OverallLevel grades the combined assessment.
type OverallLevel = string

const (
	OverallLow    OverallLevel = "LOW"
	OverallMedium OverallLevel = "MEDIUM"
	OverallHigh   OverallLevel = "HIGH"
)

// Classifier grades free text into a risk level.
type Classifier interface {
	Classify(text string) Level
}

// KeywordClassifier counts the keywords present in a text, once per
// keyword, and grades by thresholds. A zero HighAbove disables the high
// grade.
type KeywordClassifier struct {
	Keywords    []string
	HighAbove   int
	MediumAbove int
}

func (c KeywordClassifier) Classify(text string) Level {
	text = strings.ToLower(text)
	var count int
	for _, kw := range c.Keywords {
		if strings.Contains(text, kw) {
			count++
		}
	}
	if c.HighAbove > 0 && count > c.HighAbove {
		return HighLevel
	}
	if count > c.MediumAbove {
		return MediumLevel
	}
	return LowLevel
}

// SafetyClassifier grades travel advisory text.
func SafetyClassifier() KeywordClassifier {
	return KeywordClassifier{
		Keywords:    []string{"warning", "advisory", "danger", "unsafe", "avoid", "caution"},
		HighAbove:   3,
		MediumAbove: 1,
	}
}

// HealthClassifier grades health requirement text.
func HealthClassifier() KeywordClassifier {
	return KeywordClassifier{
		Keywords:    []string{"vaccination", "required", "mandatory", "outbreak", "disease", "health warning"},
		MediumAbove: 2,
	}
}

// EpidemicClassifier grades epidemic restriction text.
func EpidemicClassifier() KeywordClassifier {
	return KeywordClassifier{
		Keywords:    []string{"covid", "pandemic", "restrictions", "quarantine", "testing", "vaccination"},
		MediumAbove: 2,
	}
}

var levelWeights = map[Level]float64{
	LowLevel:    1,
	MediumLevel: 2,
	HighLevel:   3,
}

// OverallScore combines category levels into a 0-100 score.
func OverallScore(levels []Level) float64 {
	if len(levels) == 0 {
		return 0
	}
	var sum float64
	for _, lvl := range levels {
		sum += levelWeights[lvl]
	}
	return sum / (float64(len(levels)) * 3) * 100
}

// OverallFor buckets a combined score.
func OverallFor(score float64) OverallLevel {
	switch {
	case score < 40:
		return OverallLow
	case score < 70:
		return OverallMedium
	}
	return OverallHigh
}
