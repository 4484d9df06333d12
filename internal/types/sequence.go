package types

// SkuSequence holds the per-prefix allocation counter. LastValue is the most
// recently handed-out sequence integer; -1 would mean "nothing allocated",
// but rows are only created by the first allocation, so LastValue starts at 0.
type SkuSequence struct {
	Prefix    string `gorm:"type:varchar(7);primaryKey" json:"prefix"`
	LastValue int64  `gorm:"not null" json:"last_value"`
}

func (SkuSequence) TableName() string { return "sku_sequence" }

// MaxSequence is the largest allocatable sequence integer (ZZZ in base 36).
// A counter past this value means the prefix is exhausted.
const MaxSequence = 36*36*36 - 1
