package models

import "strings"

type SortKey string

const (
	SortNone      SortKey = ""
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
)

// SortKeys lists every key in the order a sort selector shows them.
var SortKeys = []SortKey{SortNone, SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc}

func (k SortKey) Valid() bool {
	switch k {
	case SortNone, SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc:
		return true
	}
	return false
}

// Label is the human readable name of the key.
func (k SortKey) Label() string {
	switch k {
	case SortPriceAsc:
		return "Menor preço"
	case SortPriceDesc:
		return "Maior preço"
	case SortNameAsc:
		return "Nome (A-Z)"
	case SortNameDesc:
		return "Nome (Z-A)"
	}
	return "Padrão"
}

// ParseSortKey maps a selector value to a key. Unknown values mean no sorting.
func ParseSortKey(s string) SortKey {
	k := SortKey(strings.TrimSpace(s))
	if !k.Valid() {
		return SortNone
	}
	return k
}

// Criteria is the pair of user inputs driving the current view.
type Criteria struct {
	SearchText string  `json:"q"`
	Sort       SortKey `json:"sort"`
}

// NewCriteria derives criteria from raw control values. The search box value is trimmed.
func NewCriteria(search, sort string) Criteria {
	return Criteria{
		SearchText: strings.TrimSpace(search),
		Sort:       ParseSortKey(sort),
	}
}
