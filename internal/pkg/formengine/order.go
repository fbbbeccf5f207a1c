package formengine

import "sort"

// SortFields orders a block's fields by displayOrder, treating a missing
// order as 0. The sort is stable so fields sharing an order keep their
// schema position.
func SortFields(fields []FieldDefinition) []FieldDefinition {
	sorted := make([]FieldDefinition, len(fields))
	copy(sorted, fields)
	sort.SliceStable(sorted, func(i, j int) bool {
		return displayOrder(sorted[i]) < displayOrder(sorted[j])
	})
	return sorted
}

func displayOrder(f FieldDefinition) int {
	if f.DisplayOrder == nil {
		return 0
	}
	return *f.DisplayOrder
}
