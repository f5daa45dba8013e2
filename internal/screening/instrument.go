package screening

// Band maps an inclusive score range to a severity category label.
type Band struct {
	Low   int
	High  int
	Label string
}

// Contains reports whether score falls inside the band, bounds included.
func (b Band) Contains(score int) bool {
	return score >= b.Low && score <= b.High
}

// Instrument is the fixed metadata for one standardized questionnaire:
// how many items it has, the valid per-item range, the question text shown
// by the presentation layer, and the ordered band table used to classify
// a total score. Adding an instrument is new data, not new code.
type Instrument struct {
	ID           string
	Name         string
	MaxItemValue int
	ScaleLabels  []string
	Questions    []string
	Bands        []Band
}

// ItemCount returns the expected response vector length.
func (in *Instrument) ItemCount() int {
	return len(in.Questions)
}

// MaxScore returns the highest score a valid response vector can produce.
func (in *Instrument) MaxScore() int {
	return in.ItemCount() * in.MaxItemValue
}

// Depression is the Burns Depression Checklist: 25 items rated 0-4.
var Depression = &Instrument{
	ID:           "depression",
	Name:         "Burns Depression Checklist",
	MaxItemValue: 4,
	ScaleLabels:  []string{"Not at all", "Somewhat", "Moderately", "A lot", "Extremely"},
	Questions: []string{
		"Feeling sad or down in the dumps",
		"Feeling unhappy or blue",
		"Crying spells or tearfulness",
		"Feeling discouraged",
		"Feeling hopeless",
		"Low self-esteem",
		"Feeling worthless or inadequate",
		"Guilt or shame",
		"Criticizing yourself or others",
		"Difficulty making decisions",
		"Loss of interest in family, friends or colleagues",
		"Loneliness",
		"Spending less time with family or friends",
		"Loss of motivation",
		"Loss of interest in work or other activities",
		"Avoiding work or other activities",
		"Loss of pleasure or satisfaction in life",
		"Feeling tired",
		"Difficulty sleeping or sleeping too much",
		"Decreased or increased appetite",
		"Loss of interest in sex",
		"Worrying about your health",
		"Do you have any suicidal thoughts?",
		"Would you like to end your life?",
		"Do you have a plan for harming yourself?",
	},
	Bands: []Band{
		{0, 5, "No Depression"},
		{6, 10, "Normal but unhappy"},
		{11, 25, "Mild depression"},
		{26, 50, "Moderate depression"},
		{51, 75, "Severe depression"},
		{76, 100, "Extreme depression"},
	},
}

// Anxiety is the GAD-7 anxiety questionnaire: 7 items rated 0-3.
var Anxiety = &Instrument{
	ID:           "anxiety",
	Name:         "GAD-7 Anxiety Questionnaire",
	MaxItemValue: 3,
	ScaleLabels:  []string{"Not at all", "Several days", "More than half the days", "Nearly every day"},
	Questions: []string{
		"Feeling nervous, anxious, or on edge",
		"Not being able to stop or control worrying",
		"Worrying too much about different things",
		"Trouble relaxing",
		"Being so restless that it is hard to sit still",
		"Becoming easily annoyed or irritable",
		"Feeling afraid, as if something awful might happen",
	},
	Bands: []Band{
		{0, 4, "Minimal anxiety"},
		{5, 9, "Mild anxiety"},
		{10, 14, "Moderate anxiety"},
		{15, 21, "Severe anxiety"},
	},
}

// Builtin returns the instruments shipped with the application.
func Builtin() []*Instrument {
	return []*Instrument{Depression, Anxiety}
}

// Registry resolves instruments by ID. It is built once at startup from the
// built-in instruments plus any user-defined catalog.
type Registry struct {
	ordered []*Instrument
	byID    map[string]*Instrument
}

// NewRegistry creates a registry from the given instruments, preserving
// order. Later instruments with a duplicate ID are ignored so user catalogs
// cannot shadow the built-in definitions.
func NewRegistry(instruments ...*Instrument) *Registry {
	r := &Registry{byID: make(map[string]*Instrument)}
	for _, in := range instruments {
		if _, exists := r.byID[in.ID]; exists {
			continue
		}
		r.byID[in.ID] = in
		r.ordered = append(r.ordered, in)
	}
	return r
}

// ByID returns the instrument with the given ID, if registered.
func (r *Registry) ByID(id string) (*Instrument, bool) {
	in, ok := r.byID[id]
	return in, ok
}

// All returns the registered instruments in registration order.
func (r *Registry) All() []*Instrument {
	return r.ordered
}
