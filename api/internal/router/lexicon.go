package router

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Rule and registry documents are authored outside the code and embedded at
// build time. They are parsed once and cached read-only for the process
// lifetime; every accessor below is safe for unbounded concurrent reads.

//go:embed rules/intents.yml
var intentsDoc []byte

//go:embed rules/format.yml
var formatDoc []byte

//go:embed rules/constraints.yml
var constraintsDoc []byte

//go:embed data/levels.json
var levelsDoc []byte

//go:embed data/topics.json
var topicsDoc []byte

//go:embed data/subtopics.json
var subtopicsDoc []byte

type levelRec struct {
	ID      string   `json:"id"`
	Aliases []string `json:"aliases"`
}

type topicRec struct {
	ID       string   `json:"id"`
	Synonyms []string `json:"synonyms"`
}

type subtopicRec struct {
	ID       string   `json:"id"`
	TopicID  string   `json:"topicId"`
	Synonyms []string `json:"synonyms"`
}

type intentRulesDoc struct {
	Order    []Intent            `yaml:"order"`
	Patterns map[Intent][]string `yaml:"patterns"`
}

type constraintRulesDoc struct {
	Difficulty map[string][]string `yaml:"difficulty"`
	Indices    map[string][]string `yaml:"indices"`
}

type lexicons struct {
	intentOrder []Intent
	intentRx    map[Intent][]*regexp.Regexp
	formats     map[string][]string
	levels      []levelRec
	topics      []topicRec
	subtopics   []subtopicRec
	difficulty  map[string][]string
	indices     map[string][]string
}

var (
	lexOnce sync.Once
	lex     *lexicons
)

// loadLexicons builds the process-wide immutable rule caches. The documents
// ship with the binary, so a parse failure is a build defect: panic.
func loadLexicons() *lexicons {
	lexOnce.Do(func() {
		l := &lexicons{
			intentRx: make(map[Intent][]*regexp.Regexp),
			formats:  make(map[string][]string),
		}

		var intents intentRulesDoc
		mustYAML("rules/intents.yml", intentsDoc, &intents)
		l.intentOrder = intents.Order
		for _, it := range intents.Order {
			for _, p := range intents.Patterns[it] {
				l.intentRx[it] = append(l.intentRx[it], regexp.MustCompile("(?i)"+p))
			}
		}

		var formats map[string][]string
		mustYAML("rules/format.yml", formatDoc, &formats)
		for id, words := range formats {
			l.formats[id] = foldAll(words)
		}

		var cons constraintRulesDoc
		mustYAML("rules/constraints.yml", constraintsDoc, &cons)
		l.difficulty = foldMap(cons.Difficulty)
		l.indices = foldMap(cons.Indices)

		mustJSON("data/levels.json", levelsDoc, &l.levels)
		mustJSON("data/topics.json", topicsDoc, &l.topics)
		mustJSON("data/subtopics.json", subtopicsDoc, &l.subtopics)
		for i := range l.levels {
			l.levels[i].Aliases = foldAll(l.levels[i].Aliases)
		}
		for i := range l.topics {
			l.topics[i].Synonyms = foldAll(l.topics[i].Synonyms)
		}
		for i := range l.subtopics {
			l.subtopics[i].Synonyms = foldAll(l.subtopics[i].Synonyms)
		}

		lex = l
	})
	return lex
}

func mustYAML(name string, doc []byte, v any) {
	if err := yaml.Unmarshal(doc, v); err != nil {
		panic(fmt.Errorf("router: parse %s: %w", name, err))
	}
}

func mustJSON(name string, doc []byte, v any) {
	if err := json.Unmarshal(doc, v); err != nil {
		panic(fmt.Errorf("router: parse %s: %w", name, err))
	}
}

// foldKey lower-cases and collapses a string the same way lexicon entries
// are stored, so containment checks compare like with like.
func foldKey(s string) string {
	s = norm.NFC.String(s)
	s = strings.ToLower(s)
	return strings.TrimSpace(wsRun.ReplaceAllString(s, " "))
}

func foldAll(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		out = append(out, foldKey(w))
	}
	return out
}

func foldMap(m map[string][]string) map[string][]string {
	out := make(map[string][]string, len(m))
	for k, v := range m {
		out[k] = foldAll(v)
	}
	return out
}

// includesWord is a word-ish containment check on padded normalized text:
// the needle must be preceded by a space and followed by a space, comma or
// period. Approximates whole-word matching without tokenization.
func includesWord(padded, needle string) bool {
	return strings.Contains(padded, " "+needle+" ") ||
		strings.HasSuffix(padded, " "+needle) ||
		strings.Contains(padded, " "+needle+",") ||
		strings.Contains(padded, " "+needle+".")
}

func anyWord(padded string, words []string) bool {
	for _, w := range words {
		if includesWord(padded, w) {
			return true
		}
	}
	return false
}

// ResolveLevel maps a user-typed level alias (or a level id) to the
// registry id. Read-only accessor over the cached registry.
func ResolveLevel(alias string) (string, bool) {
	key := foldKey(alias)
	if key == "" {
		return "", false
	}
	for _, l := range loadLexicons().levels {
		if key == foldKey(l.ID) {
			return l.ID, true
		}
		for _, a := range l.Aliases {
			if key == a {
				return l.ID, true
			}
		}
	}
	return "", false
}
