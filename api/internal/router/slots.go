package router

// Format lookup priority. Declared explicitly: first match wins.
var formatOrder = [...]string{"qcm", "exercice", "demonstration", "cours"}

// ExtractSlots runs four independent lookups against the padded normalized
// text. Fields that match nothing stay nil. A subtopic match backfills its
// declared parent topic, but never overrides a topic found on its own.
func ExtractSlots(normalized string) Slots {
	lx := loadLexicons()
	padded := " " + foldKey(normalized) + " "

	var s Slots
	for _, f := range formatOrder {
		if anyWord(padded, lx.formats[f]) {
			s.Format = strPtr(f)
			break
		}
	}

	for _, l := range lx.levels {
		if anyWord(padded, l.Aliases) {
			s.Level = strPtr(l.ID)
			break
		}
	}

	for _, t := range lx.topics {
		if anyWord(padded, t.Synonyms) {
			s.Topic = strPtr(t.ID)
			break
		}
	}

	// subtopic goes last so an explicit topic has already been seen
	for _, st := range lx.subtopics {
		if anyWord(padded, st.Synonyms) {
			s.Subtopic = strPtr(st.ID)
			if s.Topic == nil {
				s.Topic = strPtr(st.TopicID)
			}
			break
		}
	}
	return s
}
