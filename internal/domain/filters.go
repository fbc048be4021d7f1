package domain

import (
	"strconv"
	"strings"
)

// ParseIDList parses a comma separated list of integer identifiers. Every
// token must be an integer; the first one that is not is reported as an
// *InvalidFilterError naming param.
func ParseIDList(param, raw string) ([]int, error) {
	tokens := strings.Split(raw, ",")
	ids := make([]int, 0, len(tokens))

	for _, token := range tokens {
		id, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil {
			return nil, &InvalidFilterError{Param: param, Value: token}
		}

		ids = append(ids, id)
	}

	return ids, nil
}

// ParseID parses a single integer identifier filter.
func ParseID(param, raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &InvalidFilterError{Param: param, Value: raw}
	}

	return id, nil
}

type identifiable interface {
	GetID() int
}

// DistinctByID drops every element whose ID was already seen, keeping the
// first occurrence and the input order.
func DistinctByID[T identifiable](items []T) []T {
	seen := make(map[int]struct{}, len(items))
	out := make([]T, 0, len(items))

	for _, item := range items {
		if _, ok := seen[item.GetID()]; ok {
			continue
		}

		seen[item.GetID()] = struct{}{}
		out = append(out, item)
	}

	return out
}
