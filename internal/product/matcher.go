package product

import (
	"sort"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

// UniqueIDs drops repeated ids, keeping first occurrences in order.
func UniqueIDs(ids []int64) []int64 {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// MatchAll returns, ascending, the products that have an association with
// every id in required. Pairs for categories outside required are ignored and
// duplicates in either input do not change the result.
func MatchAll(pairs []model.ProductCategory, required []int64) []int64 {
	want := UniqueIDs(required)
	if len(want) == 0 {
		return nil
	}
	wanted := make(map[int64]struct{}, len(want))
	for _, id := range want {
		wanted[id] = struct{}{}
	}

	matched := make(map[int64]map[int64]struct{})
	for _, p := range pairs {
		if _, ok := wanted[p.CategoryID]; !ok {
			continue
		}
		set, ok := matched[p.ProductID]
		if !ok {
			set = make(map[int64]struct{}, len(want))
			matched[p.ProductID] = set
		}
		set[p.CategoryID] = struct{}{}
	}

	var out []int64
	for productID, set := range matched {
		if len(set) == len(wanted) {
			out = append(out, productID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
