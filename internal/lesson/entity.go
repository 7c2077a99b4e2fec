package lesson

// Lesson is a fully assembled educational lesson. After assembly every field
// holds a value and every list has at least one element; the description may
// carry rich-text markup.
type Lesson struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Outcomes      []string `json:"outcomes"`
	KeyConcepts   []string `json:"keyConcepts"`
	Activities    []string `json:"activities"`
	Difficulty    string   `json:"difficulty,omitempty"`
	Prerequisites string   `json:"prerequisites,omitempty"`
	EstimatedTime string   `json:"estimatedTime,omitempty"`
}

// ModuleMetadata describes the module a lesson belongs to.
type ModuleMetadata struct {
	ModuleName    string `json:"moduleName"`
	Difficulty    string `json:"difficulty"`
	Prerequisites string `json:"prerequisites"`
	Time          string `json:"time"`
}
