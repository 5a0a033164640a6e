package models

import (
	"strconv"
	"time"
)

// Payment methods offered at checkout. The wallet method is shown in
// the UI but checkout submission is disabled for it.
const (
	MethodMobile  = "mobile"
	MethodBinance = "binance"
	MethodWallet  = "wallet"
)

// Order statuses. Checkout only ever produces "pending"; completion is
// a manual back-office step.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Order represents a submitted order. Items is a full denormalized
// snapshot of the cart at submission time, so later catalog edits never
// change historical orders.
type Order struct {
	ID     string     `json:"id"`
	UserID string     `json:"userId"`
	Items  []CartItem `json:"items"`
	Total  int64      `json:"total"`
	Method string     `json:"method"`
	Status string     `json:"status"`
	Date   string     `json:"date"`
}

// NewOrderID derives an order id from the current time: the last ten
// digits of the millisecond timestamp.
func NewOrderID(now time.Time) string {
	id := strconv.FormatInt(now.UnixMilli(), 10)
	if len(id) > 10 {
		id = id[len(id)-10:]
	}
	return id
}

// NewOrder builds a pending order from a cart snapshot. The items slice
// is copied so the order is immune to later cart mutations.
func NewOrder(userID string, items []CartItem, method string, now time.Time) Order {
	snapshot := make([]CartItem, len(items))
	copy(snapshot, items)
	return Order{
		ID:     NewOrderID(now),
		UserID: userID,
		Items:  snapshot,
		Total:  CartTotal(snapshot),
		Method: method,
		Status: StatusPending,
		Date:   now.Format("2006-01-02"),
	}
}
