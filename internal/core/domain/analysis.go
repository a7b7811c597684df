package domain

// ClassifierSource records which classifier path produced a mood.
type ClassifierSource string

const (
	SourceEstimator ClassifierSource = "estimator"
	SourceHeuristic ClassifierSource = "heuristic"
	SourceDefault   ClassifierSource = "default"
)

// Classification is the Mood Classifier output.
type Classification struct {
	Mood   Mood
	Source ClassifierSource
	// Color is the photo's dominant colour as #rrggbb, empty on the default path.
	Color string
}

// WidgetSource records where an embed list came from.
type WidgetSource string

const (
	WidgetsFromPool      WidgetSource = "pool"
	WidgetsFromToplist   WidgetSource = "toplist"
	WidgetsFromFeatured  WidgetSource = "featured"
	WidgetsFromEditorial WidgetSource = "editorial"
	WidgetsFromHardcoded WidgetSource = "hardcoded"
)

// Analysis is the result of one analyze request.
type Analysis struct {
	Mood     Mood
	Language Language
	Market   Market
	Source   ClassifierSource
	Color    string
	Tracks   []Card
	Embeds   []string
	// Warning is set on the degraded path, when building the seed pool failed.
	Warning      string
	WidgetSource WidgetSource
}
