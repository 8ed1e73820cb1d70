package entity

import (
	"strconv"
	"strings"
	"time"
)

type NFTAttribute struct {
	TraitType string
	Value     interface{}
}

// NFTMetadata is the game-side copy of an NFT's off-chain JSON metadata.
type NFTMetadata struct {
	Mint       string
	Name       string
	Symbol     string
	Image      string
	URI        string
	Attributes []NFTAttribute
	UpdatedAt  time.Time
}

// Clone copies m deeply enough that writes through SetTrait on the copy
// never reach m.
func (m *NFTMetadata) Clone() *NFTMetadata {
	cp := *m
	if m.Attributes != nil {
		cp.Attributes = make([]NFTAttribute, len(m.Attributes))
		copy(cp.Attributes, m.Attributes)
	}
	return &cp
}

// Trait returns the value of the first attribute whose trait type matches
// name, ignoring case.
func (m *NFTMetadata) Trait(name string) (interface{}, bool) {
	for _, a := range m.Attributes {
		if strings.EqualFold(a.TraitType, name) {
			return a.Value, true
		}
	}
	return nil, false
}

// SetTrait overwrites the named attribute, appending it when absent.
func (m *NFTMetadata) SetTrait(name string, value interface{}) {
	for i, a := range m.Attributes {
		if strings.EqualFold(a.TraitType, name) {
			m.Attributes[i].Value = value
			return
		}
	}
	m.Attributes = append(m.Attributes, NFTAttribute{TraitType: name, Value: value})
}

// NumericTrait reads a trait as a number. Strings holding numbers are
// accepted since marketplaces store attribute values either way.
func (m *NFTMetadata) NumericTrait(name string) (float64, bool) {
	v, ok := m.Trait(name)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
