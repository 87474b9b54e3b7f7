package model

import "time"

// Criteria narrows a record set for export. Each field is optional; a nil
// or empty field places no restriction on that dimension. The fields that
// are present are combined with logical AND.
type Criteria struct {
	ISPs         []string   // matched against the normalized provider name
	Categories   []string   // matched against the raw category tag
	Start        *time.Time // inclusive of timestamps at or after Start
	End          *time.Time // inclusive of timestamps at or before End
	ProductCodes []string   // exact match
}

// Empty reports whether the criteria impose no restriction at all.
func (c Criteria) Empty() bool {
	return len(c.ISPs) == 0 && len(c.Categories) == 0 &&
		c.Start == nil && c.End == nil && len(c.ProductCodes) == 0
}
