package constant

// CategoryCodes maps a catalog category to the motor slot of the dispensing
// rig. Every category reachable from a catalog product must have an entry,
// otherwise ordering that product fails with an unknown-category error.
var CategoryCodes = map[string]int{
	"pizza":   1,
	"burger":  2,
	"fries":   3,
	"dessert": 4,
}

// OrderDispatchedTopic is the in-process event bus topic for order audits.
const OrderDispatchedTopic = "ORDER_DISPATCHED"
