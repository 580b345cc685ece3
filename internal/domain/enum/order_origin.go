package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// OrderOrigin tags where an order header was authored. Local orders are the
// only ones eligible for up-sync; server orders are immutable mirrors.
type OrderOrigin int

const (
	OrderOriginLocal  OrderOrigin = 0
	OrderOriginServer OrderOrigin = 1
)

func (o OrderOrigin) String() string {
	return [...]string{"Local", "Server"}[o]
}

func (o OrderOrigin) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

func (o *OrderOrigin) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*o = OrderOrigin(i)
		return nil
	}
	switch str {
	case "Local":
		*o = OrderOriginLocal
	case "Server":
		*o = OrderOriginServer
	}
	return nil
}

func (o OrderOrigin) Value() (driver.Value, error) {
	return int64(o), nil
}

func (o *OrderOrigin) Scan(value interface{}) error {
	if value == nil {
		*o = OrderOriginLocal
		return nil
	}
	switch v := value.(type) {
	case int64:
		*o = OrderOrigin(v)
	case int:
		*o = OrderOrigin(v)
	}
	return nil
}
