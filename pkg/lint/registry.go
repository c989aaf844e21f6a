package lint

import (
	"cmp"
	"slices"
	"strings"
	"sync"

	"github.com/yaklabco/swiftfmt/pkg/config"
)

// Registry holds all registered rules.
//
// Rule names are matched case-insensitively, the same way directives match
// them.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]Rule
	aliases map[string]string // lowercase alias -> lowercase canonical name
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:  make(map[string]Rule),
		aliases: make(map[string]string),
	}
}

// Register adds a rule to the registry.
// If a rule with the same name already exists, it is replaced.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[strings.ToLower(rule.Name())] = rule
}

// RegisterAlias maps a deprecated rule name to its replacement.
func (r *Registry) RegisterAlias(alias, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[strings.ToLower(alias)] = strings.ToLower(name)
}

// Get retrieves a rule by its canonical name.
func (r *Registry) Get(name string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.byName[strings.ToLower(name)]
	return rule, ok
}

// Resolve returns the rule for a name or deprecated alias.
// The boolean result reports whether an alias was followed.
func (r *Registry) Resolve(key string) (rule Rule, deprecated bool, found bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key = strings.ToLower(key)
	if rule, ok := r.byName[key]; ok {
		return rule, false, true
	}
	if target, ok := r.aliases[key]; ok {
		if rule, ok := r.byName[target]; ok {
			return rule, true, true
		}
	}
	return nil, false, false
}

// Rules returns all registered rules sorted by name.
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Rule, 0, len(r.byName))
	for _, rule := range r.byName {
		result = append(result, rule)
	}

	slices.SortFunc(result, func(a, b Rule) int {
		return cmp.Compare(strings.ToLower(a.Name()), strings.ToLower(b.Name()))
	})

	return result
}

// Names returns all registered rule names in sorted order.
func (r *Registry) Names() []string {
	rules := r.Rules()
	names := make([]string, len(rules))
	for idx, rule := range rules {
		names[idx] = rule.Name()
	}
	return names
}

// RuleInfos describes every registered rule for config templates.
func (r *Registry) RuleInfos() []config.RuleInfo {
	rules := r.Rules()
	infos := make([]config.RuleInfo, len(rules))
	for idx, rule := range rules {
		infos[idx] = config.RuleInfo{
			Name:           rule.Name(),
			Help:           rule.Help(),
			DefaultEnabled: rule.DefaultEnabled(),
		}
	}
	return infos
}

// DefaultRegistry is the global registry for built-in rules.
// Rules register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for rule registration
var DefaultRegistry = NewRegistry()

//nolint:gochecknoinits // Wires template generation to the built-in rules.
func init() {
	config.DefaultRuleInfoProvider = DefaultRegistry.RuleInfos
}
