package patterns

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule names, in catalog order.
const (
	RulePlaceholder     = "placeholder"
	RuleTitle           = "title"
	RuleAriaLabel       = "aria-label"
	RuleTextInJSX       = "text_in_jsx"
	RuleTranslationKeys = "translation_keys"
	RuleButtonText      = "button_text"
	RuleErrorMessages   = "error_messages"
	RuleEmptyStates     = "empty_states"
)

// Common UI vocabularies used by the known-word inline rules.
var (
	buttonWords = []string{
		"Save", "Submit", "Cancel", "Delete", "Edit", "Add", "Remove", "Update", "Create",
		"Back", "Next", "Previous", "Close", "Open", "Search", "Filter", "Reset", "Clear",
		"Confirm", "Yes", "No", "OK", "Apply", "Select", "Choose", "Upload", "Download",
		"Export", "Import", "View", "Show", "Hide", "Enable", "Disable", "Start", "Stop",
		"Pause", "Resume", "Retry", "Refresh", "Reload", "Login", "Logout", "Sign",
		"Register", "Forgot", "Remember", "Loading", "Error", "Success", "Warning", "Info",
		"Help", "Settings", "Profile", "Dashboard", "Home", "About", "Contact", "Support",
		"Terms", "Privacy", "Policy",
	}
	errorWords = []string{
		"Error", "Failed", "Invalid", "Required", "Must", "Cannot", "Unable", "Please",
		"Try", "Again", "Sorry", "Oops", "Something went wrong",
	}
	emptyStateWords = []string{
		"No ", "None", "Empty", "Nothing", "Not found", "No results", "No data",
		"No items", "No matches", "No players", "No statistics",
	}
)

// translationKeyRejects are substrings marking a key-shaped token as a filename or URL.
var translationKeyRejects = []string{".com", ".org", ".json", ".tsx", ".ts", ".js"}

// unicodeSpace is a class body matching every Unicode whitespace rune.
// RE2's \s is ASCII only and misses pasted NBSP or ideographic spaces.
const unicodeSpace = `\t\n\v\f\r\x1c-\x1f\p{Z}\x{85}`

// Rule is a named heuristic. Group 1 of Pattern is the candidate text.
type Rule struct {
	Name        string
	Description string
	IgnoreCase  bool
	Pattern     *regexp.Regexp
	// Reject lists substrings that disqualify a captured text for this rule only.
	Reject []string
}

// RuleSpec is the uncompiled form of a Rule.
type RuleSpec struct {
	Name        string
	Description string
	Expr        string
	IgnoreCase  bool
	Reject      []string
}

// Catalog is an ordered, immutable set of rules.
type Catalog struct {
	rules []Rule
	index map[string]int
}

// Match is a single classified candidate on a line.
type Match struct {
	Rule string
	Text string
}

// DefaultSpecs returns the built-in rule table.
func DefaultSpecs() []RuleSpec {
	return []RuleSpec{
		{
			Name:        RulePlaceholder,
			Description: "Literal placeholder attribute value",
			Expr:        `placeholder="([^"{]+)"`,
		},
		{
			Name:        RuleTitle,
			Description: "Literal title attribute value",
			Expr:        `title="([^"{]+)"`,
		},
		{
			Name:        RuleAriaLabel,
			Description: "Literal aria-label attribute value",
			Expr:        `aria-label="([^"{]+)"`,
		},
		{
			Name:        RuleTextInJSX,
			Description: "Capitalized text between tags",
			Expr:        `>([A-Z][a-zA-Z` + unicodeSpace + `]+)<`,
		},
		{
			Name:        RuleTranslationKeys,
			Description: "Inline text shaped like a translation key (a key rendered as literal text, not a t() call)",
			Expr:        `>([a-z]+\.[a-zA-Z]+)<`,
			Reject:      translationKeyRejects,
		},
		{
			Name:        RuleButtonText,
			Description: "Common action or status word between tags",
			Expr:        `>(` + alternation(buttonWords) + `)(?:<|</)`,
			IgnoreCase:  true,
		},
		{
			Name:        RuleErrorMessages,
			Description: "Inline text opening with an error phrase",
			Expr:        `>(` + alternation(errorWords) + `)[^<]*<`,
			IgnoreCase:  true,
		},
		{
			Name:        RuleEmptyStates,
			Description: "Inline text opening with an empty-state phrase",
			Expr:        `>(` + alternation(emptyStateWords) + `)[^<]*<`,
			IgnoreCase:  true,
		},
	}
}

// NewCatalog compiles specs into a catalog. It returns an error for duplicate
// names or expressions without exactly one capturing group.
func NewCatalog(specs []RuleSpec) (*Catalog, error) {
	c := &Catalog{index: make(map[string]int, len(specs))}
	for _, spec := range specs {
		if spec.Name == "" {
			return nil, ErrEmptyRuleName
		}
		if _, exists := c.index[spec.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRule, spec.Name)
		}

		expr := spec.Expr
		if spec.IgnoreCase {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", spec.Name, err)
		}
		if re.NumSubexp() != 1 {
			return nil, fmt.Errorf("%w: rule %q has %d", ErrCaptureGroups, spec.Name, re.NumSubexp())
		}

		c.index[spec.Name] = len(c.rules)
		c.rules = append(c.rules, Rule{
			Name:        spec.Name,
			Description: spec.Description,
			IgnoreCase:  spec.IgnoreCase,
			Pattern:     re,
			Reject:      spec.Reject,
		})
	}
	return c, nil
}

// MustCatalog is like NewCatalog but panics on error.
func MustCatalog(specs []RuleSpec) *Catalog {
	c, err := NewCatalog(specs)
	if err != nil {
		panic(fmt.Sprintf("patterns: %v", err))
	}
	return c
}

var defaultCatalog = MustCatalog(DefaultSpecs())

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

// Rules returns the rules in catalog order.
func (c *Catalog) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Names returns the rule names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.rules))
	for _, r := range c.rules {
		names = append(names, r.Name)
	}
	return names
}

// Lookup returns the rule with the given name.
func (c *Catalog) Lookup(name string) (Rule, bool) {
	i, ok := c.index[name]
	if !ok {
		return Rule{}, false
	}
	return c.rules[i], true
}

func alternation(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}
