package domain

import (
	"encoding/json"
	"sort"
	"time"
)

// MatchClass tags what kind of phrase a Match represents
type MatchClass string

const (
	ClassProduct  MatchClass = "product"
	ClassBrand    MatchClass = "brand"
	ClassColor    MatchClass = "color"
	ClassBudget   MatchClass = "budget"
	ClassQuantity MatchClass = "quantity"
)

// Token is a word of the utterance with its zero-based position
type Token struct {
	Text  string `json:"text"`
	Index int    `json:"index"`
}

// Match is one phrase recognized over a closed span of token indices
type Match struct {
	Term        string     `json:"term"`
	MatchedWith string     `json:"matched_with"`
	StartPos    int        `json:"start_pos"`
	EndPos      int        `json:"end_pos"`
	Score       float64    `json:"score"`
	Class       MatchClass `json:"type"`
}

// MatchKey identifies a match inside a product's match log
type MatchKey struct {
	Class    MatchClass
	Term     string
	StartPos int
	EndPos   int
}

// Key returns the identity used to de-duplicate match logs
func (m Match) Key() MatchKey {
	return MatchKey{Class: m.Class, Term: m.Term, StartPos: m.StartPos, EndPos: m.EndPos}
}

// Overlaps reports whether two spans share at least one token index
func (m Match) Overlaps(other Match) bool {
	return m.StartPos <= other.EndPos && m.EndPos >= other.StartPos
}

// SameSpan reports whether two matches cover exactly the same tokens
func (m Match) SameSpan(other Match) bool {
	return m.StartPos == other.StartPos && m.EndPos == other.EndPos
}

// ProductRecord is one resolved product mention with its attributes
type ProductRecord struct {
	CanonicalName string    `json:"product"`
	Aliases       StringSet `json:"aliases"`
	AliasesRaw    StringSet `json:"aliases_raw"`
	Quantities    IntSet    `json:"quantities"`
	Brands        StringSet `json:"brands"`
	BrandsRaw     StringSet `json:"brands_raw"`
	Colors        StringSet `json:"colors"`
	ColorsRaw     StringSet `json:"colors_raw"`
	Budgets       IntSet    `json:"budgets"`
	Positions     IntSet    `json:"positions"`
	MatchLogs     []Match   `json:"match_logs"`
	seenLogs      map[MatchKey]struct{}
}

// NewProductRecord creates a record seeded from a product match
func NewProductRecord(name string, m Match) *ProductRecord {
	r := &ProductRecord{CanonicalName: name}
	r.Aliases.Add(name)
	r.AliasesRaw.Add(m.Term)
	r.Positions.Add(m.StartPos)
	r.AddLog(m)
	return r
}

// AddLog appends a match to the log unless an identical one is present
func (r *ProductRecord) AddLog(m Match) {
	if r.seenLogs == nil {
		r.seenLogs = make(map[MatchKey]struct{}, len(r.MatchLogs)+1)
		for _, existing := range r.MatchLogs {
			r.seenLogs[existing.Key()] = struct{}{}
		}
	}
	key := m.Key()
	if _, ok := r.seenLogs[key]; ok {
		return
	}
	r.seenLogs[key] = struct{}{}
	r.MatchLogs = append(r.MatchLogs, m)
}

// ExtractionResult is the pipeline output for one utterance
type ExtractionResult struct {
	Products      []ProductRecord `json:"products"`
	TotalProducts int             `json:"total_products"`
}

// EmptyResult returns the well-formed result used when no product is found
func EmptyResult() ExtractionResult {
	return ExtractionResult{Products: []ProductRecord{}, TotalProducts: 0}
}

// ExtractRequest represents an extraction request body
type ExtractRequest struct {
	Text string `json:"text" binding:"required"`
}

// HistoryEntry is one stored query and the result returned for it
type HistoryEntry struct {
	ID        int64            `json:"id"`
	RawText   string           `json:"raw_text"`
	Result    ExtractionResult `json:"extracted_json"`
	CreatedAt time.Time        `json:"created_at"`
}

// StringSet is an insertion-ordered set of strings.
// It serializes as a sorted JSON array.
type StringSet struct {
	items []string
	index map[string]struct{}
}

// Add inserts v if absent and reports whether it was added
func (s *StringSet) Add(v string) bool {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = struct{}{}
	s.items = append(s.items, v)
	return true
}

// Union adds every element of other in its order
func (s *StringSet) Union(other StringSet) {
	for _, v := range other.items {
		s.Add(v)
	}
}

// Contains reports membership
func (s StringSet) Contains(v string) bool {
	_, ok := s.index[v]
	return ok
}

// Len returns the number of elements
func (s StringSet) Len() int { return len(s.items) }

// Values returns the elements in insertion order
func (s StringSet) Values() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Sorted returns the elements in ascending order
func (s StringSet) Sorted() []string {
	out := s.Values()
	sort.Strings(out)
	return out
}

func (s StringSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *StringSet) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*s = StringSet{}
	for _, v := range values {
		s.Add(v)
	}
	return nil
}

// IntSet is an insertion-ordered set of integers.
// It serializes as a sorted JSON array.
type IntSet struct {
	items []int
	index map[int]struct{}
}

// Add inserts v if absent and reports whether it was added
func (s *IntSet) Add(v int) bool {
	if s.index == nil {
		s.index = make(map[int]struct{})
	}
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = struct{}{}
	s.items = append(s.items, v)
	return true
}

// Union adds every element of other in its order
func (s *IntSet) Union(other IntSet) {
	for _, v := range other.items {
		s.Add(v)
	}
}

// Contains reports membership
func (s IntSet) Contains(v int) bool {
	_, ok := s.index[v]
	return ok
}

// Len returns the number of elements
func (s IntSet) Len() int { return len(s.items) }

// Values returns the elements in insertion order
func (s IntSet) Values() []int {
	out := make([]int, len(s.items))
	copy(out, s.items)
	return out
}

// Sorted returns the elements in ascending order
func (s IntSet) Sorted() []int {
	out := s.Values()
	sort.Ints(out)
	return out
}

func (s IntSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *IntSet) UnmarshalJSON(data []byte) error {
	var values []int
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*s = IntSet{}
	for _, v := range values {
		s.Add(v)
	}
	return nil
}
