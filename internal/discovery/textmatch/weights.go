package textmatch

// Weights holds the points awarded by each match signal.
type Weights struct {
	ExactName     int `json:"exactName" yaml:"exactName"`         // Name equals the query (default: 100)
	PrefixName    int `json:"prefixName" yaml:"prefixName"`       // Name starts with the query (default: 80)
	SubstringName int `json:"substringName" yaml:"substringName"` // Name contains the query (default: 60)
	Tag           int `json:"tag" yaml:"tag"`                     // Some tag contains the query (default: 50)
	Description   int `json:"description" yaml:"description"`     // Description contains the query (default: 30)
	WordOverlap   int `json:"wordOverlap" yaml:"wordOverlap"`     // Per query word found in a name word (default: 20)
	Fuzzy         int `json:"fuzzy" yaml:"fuzzy"`                 // Per fuzzy name or tag hit (default: 15)
}

// DefaultWeights returns the default signal weights.
//
// Name tiers are exclusive; the tag, description and word-overlap signals add on top.
// Fuzzy points are only awarded when every other signal scored zero.
func DefaultWeights() *Weights {
	return &Weights{
		ExactName:     100,
		PrefixName:    80,
		SubstringName: 60,
		Tag:           50,
		Description:   30,
		WordOverlap:   20,
		Fuzzy:         15,
	}
}

// mergeWithDefaults fills zero-valued weights from the defaults.
func mergeWithDefaults(w *Weights) *Weights {
	defaults := DefaultWeights()
	if w == nil {
		return defaults
	}

	merged := *w
	if merged.ExactName == 0 {
		merged.ExactName = defaults.ExactName
	}
	if merged.PrefixName == 0 {
		merged.PrefixName = defaults.PrefixName
	}
	if merged.SubstringName == 0 {
		merged.SubstringName = defaults.SubstringName
	}
	if merged.Tag == 0 {
		merged.Tag = defaults.Tag
	}
	if merged.Description == 0 {
		merged.Description = defaults.Description
	}
	if merged.WordOverlap == 0 {
		merged.WordOverlap = defaults.WordOverlap
	}
	if merged.Fuzzy == 0 {
		merged.Fuzzy = defaults.Fuzzy
	}

	return &merged
}
