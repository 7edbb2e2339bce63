package router

func clarify(question string) PolicyDecision {
	return PolicyDecision{Action: ActionClarify, Clarify: &Clarify{Question: question}}
}

// DecidePolicy is the pure decision table mapping (intent, slots) to ROUTE
// or CLARIFY. One evaluation per call, no state.
func DecidePolicy(intent Intent, level, topic, subtopic, format *string) PolicyDecision {
	switch intent {
	case IntentCheckSolution:
		// always ask for the solution content; never auto-routes
		return clarify("Envoie ta solution (texte ou photo) et je la corrige.")

	case IntentStartDiagnostic:
		if level == nil {
			return clarify("Quel niveau veux-tu tester ? (ex: 3e collège, 2nde, 1ère…)")
		}
		return PolicyDecision{Action: ActionRoute}

	case IntentPracticeTopic:
		if topic == nil {
			return clarify("Sur quel chapitre veux-tu travailler ? (ex: équations du 2nd degré, dérivées…)")
		}
		return PolicyDecision{Action: ActionRoute}

	case IntentAskExplanation:
		if topic != nil {
			return PolicyDecision{Action: ActionRoute}
		}
		return clarify("Quel chapitre dois-je t'expliquer ?")

	case IntentGeneratePlan:
		return clarify("Pour quel niveau et quelles matières ?")

	case IntentOtherSupport:
		return clarify("Peux-tu préciser le souci ?")
	}

	d := clarify("Peux-tu préciser ta demande ?")
	d.ReasonCode = ReasonUnknown
	return d
}
