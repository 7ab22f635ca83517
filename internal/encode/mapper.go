// Package encode maps raw string tokens to the integer item space the
// engine operates on, and back. IDs are assigned in insertion order
// starting from zero, so encoding the same dataset twice produces the
// same item space.
package encode

import (
	"fmt"

	"github.com/mesh-intelligence/seqmine/pkg/types"
)

// Mapper is a bidirectional token-to-item mapping.
type Mapper struct {
	tokenToItem map[string]types.Item
	itemToToken []string
}

// NewMapper creates an empty Mapper.
func NewMapper() *Mapper {
	return &Mapper{
		tokenToItem: make(map[string]types.Item),
	}
}

// Add registers a token and returns its item ID. Adding a known token
// returns its existing ID.
func (m *Mapper) Add(token string) types.Item {
	if id, ok := m.tokenToItem[token]; ok {
		return id
	}
	id := types.Item(len(m.itemToToken))
	m.tokenToItem[token] = id
	m.itemToToken = append(m.itemToToken, token)
	return id
}

// ID returns the item ID for a token. Returns ErrUnknownToken for tokens
// never passed to Add.
func (m *Mapper) ID(token string) (types.Item, error) {
	id, ok := m.tokenToItem[token]
	if !ok {
		return 0, fmt.Errorf("looking up token %q: %w", token, types.ErrUnknownToken)
	}
	return id, nil
}

// Token returns the token for an item ID. Returns ErrUnknownItem for IDs
// that were never assigned.
func (m *Mapper) Token(id types.Item) (string, error) {
	if int(id) >= len(m.itemToToken) {
		return "", fmt.Errorf("looking up item %d: %w", id, types.ErrUnknownItem)
	}
	return m.itemToToken[id], nil
}

// Len returns the number of distinct tokens registered.
func (m *Mapper) Len() int {
	return len(m.itemToToken)
}

// EncodeAll encodes raw transactions into item sequences, registering
// unseen tokens as it goes. Transactions and candidates must be encoded
// through the same Mapper so they share one item space.
func (m *Mapper) EncodeAll(raw [][]string) []types.Sequence {
	out := make([]types.Sequence, len(raw))
	for i, tx := range raw {
		seq := make(types.Sequence, len(tx))
		for j, token := range tx {
			seq[j] = m.Add(token)
		}
		out[i] = seq
	}
	return out
}

// DecodePattern translates an encoded pattern back to its tokens.
func (m *Mapper) DecodePattern(p types.Pattern) ([]string, error) {
	tokens := make([]string, len(p.Items))
	for i, item := range p.Items {
		token, err := m.Token(item)
		if err != nil {
			return nil, err
		}
		tokens[i] = token
	}
	return tokens, nil
}
