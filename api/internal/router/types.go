package router

// Intent is the caller's high-level goal. The zero value means the intent
// could not be determined — that is a normal outcome, not an error.
type Intent string

const (
	IntentAskExplanation  Intent = "ASK_EXPLANATION"
	IntentStartDiagnostic Intent = "START_DIAGNOSTIC"
	IntentPracticeTopic   Intent = "PRACTICE_TOPIC"
	IntentCheckSolution   Intent = "CHECK_SOLUTION"
	IntentGeneratePlan    Intent = "GENERATE_PLAN"
	IntentOtherSupport    Intent = "OTHER_SUPPORT"
)

// Action is the final routing verdict.
type Action string

const (
	ActionRoute               Action = "ROUTE"
	ActionClarify             Action = "CLARIFY"
	ActionUnsupportedLanguage Action = "UNSUPPORTED_LANGUAGE"
	ActionBlocked             Action = "BLOCKED"
)

// Reason codes carried in RouterOutput.ReasonCode.
const (
	ReasonUnsupportedLanguage   = "unsupported_language"
	ReasonInappropriateContent  = "inappropriate_content"
	ReasonUnknown               = "unknown"
	ReasonInternalValidationErr = "internal_validation_error"
)

// Slots are the structured parameters extracted from free text.
// A nil field means the prompt did not mention it.
type Slots struct {
	Level    *string
	Topic    *string
	Subtopic *string
	Format   *string
}

// Constraints are request modifiers. Defaults: difficulte=auto, duree=nil,
// indices=oui.
type Constraints struct {
	Difficulte string  `json:"difficulte"`
	Duree      *string `json:"duree"` // normalized like "30min"
	Indices    string  `json:"indices"`
}

func defaultConstraints() Constraints {
	return Constraints{Difficulte: "auto", Duree: nil, Indices: "oui"}
}

// Clarify asks the caller to obtain more information before proceeding.
type Clarify struct {
	Question string `json:"question"`
}

// PolicyDecision is the ROUTE/CLARIFY verdict plus an optional question.
type PolicyDecision struct {
	Action     Action
	Clarify    *Clarify
	ReasonCode string // "unknown" when the intent was unrecognized, else ""
}

// UserProfile is caller-supplied profile data.
type UserProfile struct {
	Level *string `json:"level,omitempty"`
}

// RouterInput is the entry point request.
type RouterInput struct {
	Message     string       `json:"message"`
	UserProfile *UserProfile `json:"user_profile,omitempty"`
}

// RouterOutput is the fixed-shape routing record. It is created once per
// call, validated against the published contract, and never mutated after.
type RouterOutput struct {
	Action      Action      `json:"action"`
	Language    *string     `json:"language"`
	Intent      *Intent     `json:"intent"`
	Level       *string     `json:"level"`
	Topic       *string     `json:"topic"`
	Subtopic    *string     `json:"subtopic"`
	Format      *string     `json:"format"`
	Constraints Constraints `json:"constraints"`
	Clarify     *Clarify    `json:"clarify,omitempty"`
	ReasonCode  string      `json:"reasonCode,omitempty"`
}

func strPtr(s string) *string { return &s }
