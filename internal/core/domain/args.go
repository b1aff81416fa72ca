package domain

import "strings"

// Option names understood by the tool itself. Everything else is forwarded to the installer.
const (
	OptionHelp          = "--help"
	OptionHelpShort     = "-h"
	OptionVersion       = "--version"
	OptionVersionShort  = "-v"
	OptionPeerDeps      = "--peer-deps"
	OptionPeerDepsShort = "-p"
	OptionPeerVersion   = "--peer-version"
)

const (
	optionPrefix           = "-"
	defaultOptionsCapacity = 4
)

var knownOptions = map[string]struct{}{
	OptionHelp:          {},
	OptionHelpShort:     {},
	OptionVersion:       {},
	OptionVersionShort:  {},
	OptionPeerDeps:      {},
	OptionPeerDepsShort: {},
	OptionPeerVersion:   {},
}

// IsKnownOption reports whether name is consumed by the tool rather than forwarded.
func IsKnownOption(name string) bool {
	_, ok := knownOptions[name]
	return ok
}

// IsFlag reports whether a command line token is flag-like.
func IsFlag(token string) bool {
	return strings.HasPrefix(token, optionPrefix)
}

// OptionSet maps flag names to the tokens that followed them.
// Names keep the order in which they first appeared on the command line.
type OptionSet struct {
	names  []string
	values map[string][]string
}

// NewOptionSet creates an empty OptionSet.
func NewOptionSet() OptionSet {
	return OptionSet{
		names:  make([]string, 0, defaultOptionsCapacity),
		values: make(map[string][]string, defaultOptionsCapacity),
	}
}

// Start begins a new entry for name. A name seen before has its values reset
// but keeps its original position.
func (o *OptionSet) Start(name string) {
	if o.values == nil {
		o.values = make(map[string][]string, defaultOptionsCapacity)
	}
	if _, ok := o.values[name]; !ok {
		o.names = append(o.names, name)
	}
	o.values[name] = []string{}
}

// Append adds a value to the entry for name.
func (o *OptionSet) Append(name, value string) {
	if _, ok := o.values[name]; !ok {
		o.Start(name)
	}
	o.values[name] = append(o.values[name], value)
}

// Has reports whether name was given.
func (o OptionSet) Has(name string) bool {
	_, ok := o.values[name]
	return ok
}

// HasAny reports whether any of names was given.
func (o OptionSet) HasAny(names ...string) bool {
	for _, name := range names {
		if o.Has(name) {
			return true
		}
	}
	return false
}

// Values returns the tokens collected for name.
func (o OptionSet) Values(name string) []string {
	return o.values[name]
}

// First returns the first value collected for name.
func (o OptionSet) First(name string) (string, bool) {
	vals := o.values[name]
	if len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// Names returns the option names in order of first appearance.
func (o OptionSet) Names() []string {
	out := make([]string, len(o.names))
	copy(out, o.names)
	return out
}

// Len returns the number of distinct option names.
func (o OptionSet) Len() int {
	return len(o.names)
}

// Unknown returns the options the tool does not consume itself.
func (o OptionSet) Unknown() OptionSet {
	out := NewOptionSet()
	for _, name := range o.names {
		if IsKnownOption(name) {
			continue
		}
		out.Start(name)
		for _, v := range o.values[name] {
			out.Append(name, v)
		}
	}
	return out
}

// Tokens flattens the set back into command line tokens.
func (o OptionSet) Tokens() []string {
	tokens := make([]string, 0, len(o.names))
	for _, name := range o.names {
		tokens = append(tokens, name)
		tokens = append(tokens, o.values[name]...)
	}
	return tokens
}

// ParsedArgs is the result of splitting raw command line tokens.
type ParsedArgs struct {
	Packages []string
	Options  OptionSet
}

// ParseArgs splits tokens into packages and options.
//
// Tokens before the first flag-like token are packages. From the first flag
// onward every non-flag token belongs to the most recent flag, even if it
// looks like a package name.
func ParseArgs(tokens []string) ParsedArgs {
	parsed := ParsedArgs{
		Packages: []string{},
		Options:  NewOptionSet(),
	}

	current := ""
	inOptions := false
	for _, token := range tokens {
		isFlag := IsFlag(token)
		inOptions = inOptions || isFlag

		switch {
		case !inOptions:
			parsed.Packages = append(parsed.Packages, token)
		case isFlag:
			current = token
			parsed.Options.Start(token)
		default:
			parsed.Options.Append(current, token)
		}
	}

	return parsed
}

// IsEmpty reports whether no packages and no options were given.
func (p ParsedArgs) IsEmpty() bool {
	return len(p.Packages) == 0 && p.Options.Len() == 0
}

// WantsHelp reports whether usage should be printed.
func (p ParsedArgs) WantsHelp() bool {
	return p.IsEmpty() || p.Options.HasAny(OptionHelp, OptionHelpShort)
}

// WantsVersion reports whether the version should be printed.
func (p ParsedArgs) WantsVersion() bool {
	return p.Options.HasAny(OptionVersion, OptionVersionShort)
}

// WantsPeerDeps reports whether peer dependencies should be installed too.
func (p ParsedArgs) WantsPeerDeps() bool {
	return p.Options.HasAny(OptionPeerDeps, OptionPeerDepsShort)
}

// PeerVersion returns the parsed --peer-version setting.
func (p ParsedArgs) PeerVersion() PeerVersion {
	value, _ := p.Options.First(OptionPeerVersion)
	return ParsePeerVersion(value)
}
