package domain

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusDone       OrderStatus = "done"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// BaseRatePerSquareMeter is the fixed business rate applied to the work
// object's area when pricing an order.
const BaseRatePerSquareMeter = 1000

// Order is a repair order. Client, Contractor, and Object are snapshots:
// full copies taken at creation time, never updated when the source catalog
// entry is later edited or deleted. Materials holds resolved material names
// only; their individual costs are folded into Cost and not retained.
type Order struct {
	ID             string      `json:"id"`
	Client         Client      `json:"client"`
	Contractor     Contractor  `json:"contractor"`
	Object         WorkObject  `json:"object"`
	Materials      []string    `json:"materials"`
	Cost           float64     `json:"cost"`
	UserID         string      `json:"user_id"`
	AssignedUserID string      `json:"assigned_user_id"`
	CreatedAt      time.Time   `json:"created_at"`
	Status         OrderStatus `json:"status"`
}

// OrderCost prices an order: the object's area at the base rate plus the
// cost of every resolved material.
func OrderCost(object WorkObject, materials []Material) float64 {
	cost := object.Area * BaseRatePerSquareMeter
	for _, m := range materials {
		cost += m.Cost
	}
	return cost
}

// VisibleTo reports whether a principal may see this order: admins see
// everything, other users see orders they created or were assigned to.
func (o *Order) VisibleTo(p Principal) bool {
	if p.IsAdmin {
		return true
	}
	return o.UserID == p.ID || o.AssignedUserID == p.ID
}
