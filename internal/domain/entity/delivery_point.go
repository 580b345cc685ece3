package entity

// DeliveryPoint represents a drop-off location of a client. The local table
// is a replaceable mirror: wiped and reloaded wholesale on each down-sync.
type DeliveryPoint struct {
	ClientID int    `gorm:"primaryKey" json:"client_id"`
	Sequence int    `gorm:"primaryKey" json:"sequence"`
	Name     string `gorm:"size:120" json:"name"`
	Address  string `gorm:"size:200" json:"address"`
}

// TableName returns the table name for the DeliveryPoint model
func (DeliveryPoint) TableName() string {
	return "delivery_points"
}
