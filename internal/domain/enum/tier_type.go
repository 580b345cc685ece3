package enum

// TierType distinguishes discount tiers bracketed by line amount from tiers
// bracketed by quantity. Only amount tiers participate in bound selection;
// the type is mirrored as-is from the server schedule.
type TierType string

const (
	TierTypeAmount   TierType = "amount"
	TierTypeQuantity TierType = "quantity"
)
