package entities

// OrderStatusType - статус заказа из события order.status.changed.
type OrderStatusType string

const (
	OrderCreated   OrderStatusType = "created"
	OrderCancelled OrderStatusType = "cancelled"
	OrderCompleted OrderStatusType = "completed"
)

func (s OrderStatusType) String() string {
	return string(s)
}

type OrderStatusChange struct {
	OrderID int64
	Status  OrderStatusType
	Carrier *Carrier
	Address *Address
}
