package models

// orderTransitions is the authoritative state machine for order status.
// The happy path is forward-only; cancellation is allowed while the
// restaurant has not started preparing. delivered and canceled are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderConfirmed, OrderCanceled},
	OrderConfirmed: {OrderPreparing, OrderCanceled},
	OrderPreparing: {OrderOnTheWay},
	OrderOnTheWay:  {OrderDelivered},
	OrderDelivered: {},
	OrderCanceled:  {},
}

func IsValidOrderStatus(s OrderStatus) bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidTransitionsFrom returns the allowed next statuses, empty for
// terminal states.
func ValidTransitionsFrom(from OrderStatus) []OrderStatus {
	return orderTransitions[from]
}

// CanCancel reports whether an order is still inside the cancellation window.
func CanCancel(from OrderStatus) bool {
	return CanTransition(from, OrderCanceled)
}
