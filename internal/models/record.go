package models

// MatchingType tells the launcher how to rank a record against the typed query.
// Values mirror the launcher's own enum and are part of the wire contract.
type MatchingType int

const (
	MatchingFuzzy MatchingType = iota
	MatchingAlwaysTop
	MatchingAlwaysBottom
	MatchingAlwaysTopOnEmptySearch
)

// ResultRecord is a single launcher entry.
// Field names and order are fixed by the launcher's JSON schema.
type ResultRecord struct {
	Label      string       `json:"label"`
	Sub        string       `json:"sub,omitempty"`
	Exec       string       `json:"exec,omitempty"`
	Searchable string       `json:"searchable,omitempty"`
	Class      string       `json:"class,omitempty"`
	Matching   MatchingType `json:"matching,omitempty"`
}

// ResultSet is what the adapter prints: zero or one record.
type ResultSet []ResultRecord

// EmptyResultSet returns a non-nil empty set so it encodes as [] rather than null.
func EmptyResultSet() ResultSet {
	return ResultSet{}
}

// IsEmpty reports whether the set carries no records.
func (rs ResultSet) IsEmpty() bool {
	return len(rs) == 0
}
