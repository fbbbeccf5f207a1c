package formengine

// FieldKey addresses one field across blocks. Codes are only unique inside
// a block, so the block ID is part of the key.
type FieldKey struct {
	BlockID   int64
	FieldCode string
}

// ValueMap carries the raw, uncoerced input per field. Coercion happens at
// validation and payload time so the UI can round-trip what the user typed.
type ValueMap map[FieldKey]interface{}

// NewValues initializes one entry per field of every block. Everything
// starts explicitly absent: nil for scalar fields, an empty list for
// MULTI_ENUM. An untouched field therefore coerces to Absent rather than to
// a zero value that would pass a required check.
func NewValues(blocks []BlockDefinition) ValueMap {
	values := make(ValueMap)
	for _, block := range blocks {
		for _, field := range block.Fields {
			key := FieldKey{BlockID: block.ID, FieldCode: field.Code}
			if field.FieldType() == TypeMultiEnum {
				values[key] = []string{}
			} else {
				values[key] = nil
			}
		}
	}
	return values
}

// Set stores the raw input for a field. Unknown keys are stored too; the
// schema walk during validation and payload assembly simply never reads
// them.
func (m ValueMap) Set(blockID int64, fieldCode string, raw interface{}) {
	m[FieldKey{BlockID: blockID, FieldCode: fieldCode}] = raw
}

func (m ValueMap) Get(blockID int64, fieldCode string) interface{} {
	return m[FieldKey{BlockID: blockID, FieldCode: fieldCode}]
}
