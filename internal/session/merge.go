package session

// metadata is the module-level part of the working record.
type metadata struct {
	Difficulty    string
	Prerequisites string
	EstimatedTime string
}

// editedFields tracks which metadata fields the user has set by hand.
type editedFields struct {
	Difficulty    bool
	Prerequisites bool
	EstimatedTime bool
}

// mergeMetadata reconciles freshly generated metadata into the working
// record under the fill-if-empty rule: a field the user has set, or that
// already holds a value, is never overwritten.
func mergeMetadata(existing, incoming metadata, edited editedFields) metadata {
	out := existing
	if !edited.Difficulty && out.Difficulty == "" {
		out.Difficulty = incoming.Difficulty
	}
	if !edited.Prerequisites && out.Prerequisites == "" {
		out.Prerequisites = incoming.Prerequisites
	}
	if !edited.EstimatedTime && out.EstimatedTime == "" {
		out.EstimatedTime = incoming.EstimatedTime
	}
	return out
}
