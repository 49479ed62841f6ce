package profile

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Param is a single key=value entry of a profile section.
type Param struct {
	Name  string
	Value string
}

// Params is an insertion-ordered set of parameters for one profile section.
// Overwriting an existing key keeps its original position.
type Params struct {
	m *orderedmap.OrderedMap[string, string]
}

// NewParams returns an empty parameter set.
func NewParams() *Params {
	return &Params{m: orderedmap.New[string, string]()}
}

// NewParamsFrom returns a parameter set holding the given entries in order.
func NewParamsFrom(entries ...Param) *Params {
	p := NewParams()
	for _, e := range entries {
		p.Set(e.Name, e.Value)
	}
	return p
}

// Get returns the value for name and whether it is present.
func (p *Params) Get(name string) (string, bool) {
	return p.m.Get(name)
}

// Has reports whether name is present.
func (p *Params) Has(name string) bool {
	_, ok := p.m.Get(name)
	return ok
}

// Set inserts or overwrites name.
func (p *Params) Set(name, value string) {
	p.m.Set(name, value)
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	return p.m.Len()
}

// Keys returns the parameter names in order.
func (p *Params) Keys() []string {
	keys := make([]string, 0, p.m.Len())
	for pair := p.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Pairs returns the parameters in order.
func (p *Params) Pairs() []Param {
	pairs := make([]Param, 0, p.m.Len())
	for pair := p.m.Oldest(); pair != nil; pair = pair.Next() {
		pairs = append(pairs, Param{Name: pair.Key, Value: pair.Value})
	}
	return pairs
}

// MarshalJSON encodes the parameters as a JSON object in insertion order.
func (p *Params) MarshalJSON() ([]byte, error) {
	return p.m.MarshalJSON()
}

// MarshalYAML encodes the parameters as a YAML mapping in insertion order.
func (p *Params) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for pair := p.m.Oldest(); pair != nil; pair = pair.Next() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: pair.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: pair.Value},
		)
	}
	return node, nil
}
