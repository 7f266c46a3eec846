package match

import (
	"github.com/huandu/skiplist"
)

type priceUnit struct {
	totalSize int64
	head      *Order
	tail      *Order
	count     int64
}

// DepthItem is one aggregated price level of a depth snapshot.
type DepthItem struct {
	Price int64 `json:"price"`
	Size  int64 `json:"size"`
	Count int64 `json:"count"`
}

type queue struct {
	side        Side
	totalOrders int64
	depths      int64
	depthList   *skiplist.SkipList
	priceList   map[int64]*skiplist.Element
	orders      map[uint64]*Order
}

// NewBuyerQueue creates a new queue for buy orders (bids).
// The levels are sorted by price in descending order (highest price first).
func NewBuyerQueue() *queue {
	return &queue{
		side: Buy,
		depthList: skiplist.New(skiplist.GreaterThanFunc(func(lhs, rhs any) int {
			p1, _ := lhs.(int64)
			p2, _ := rhs.(int64)

			if p1 < p2 {
				return 1
			} else if p1 > p2 {
				return -1
			}

			return 0
		})),
		priceList: make(map[int64]*skiplist.Element),
		orders:    make(map[uint64]*Order),
	}
}

// NewSellerQueue creates a new queue for sell orders (asks).
// The levels are sorted by price in ascending order (lowest price first).
func NewSellerQueue() *queue {
	return &queue{
		side: Sell,
		depthList: skiplist.New(skiplist.GreaterThanFunc(func(lhs, rhs any) int {
			p1, _ := lhs.(int64)
			p2, _ := rhs.(int64)

			if p1 > p2 {
				return 1
			} else if p1 < p2 {
				return -1
			}

			return 0
		})),
		priceList: make(map[int64]*skiplist.Element),
		orders:    make(map[uint64]*Order),
	}
}

// order finds an order by its ID.
func (q *queue) order(id uint64) *Order {
	return q.orders[id]
}

// insertOrder inserts an order into the queue.
// isFront restores a partially filled order to the head of its level so it
// keeps its time priority; otherwise the order joins the back of the level.
func (q *queue) insertOrder(order *Order, isFront bool) {
	el, ok := q.priceList[order.Price]
	if ok {
		unit, _ := el.Value.(*priceUnit)
		if isFront {
			// Push Front
			order.next = unit.head
			order.prev = nil
			if unit.head != nil {
				unit.head.prev = order
			}
			unit.head = order
			if unit.tail == nil {
				unit.tail = order
			}
		} else {
			// Push Back
			order.prev = unit.tail
			order.next = nil
			if unit.tail != nil {
				unit.tail.next = order
			}
			unit.tail = order
			if unit.head == nil {
				unit.head = order
			}
		}

		unit.totalSize += order.Quantity
		unit.count++
		q.orders[order.ID] = order
		q.totalOrders++
	} else {
		unit := &priceUnit{
			head:      order,
			tail:      order,
			totalSize: order.Quantity,
			count:     1,
		}
		order.next = nil
		order.prev = nil

		q.orders[order.ID] = order

		el := q.depthList.Set(order.Price, unit)
		q.priceList[order.Price] = el

		q.totalOrders++
		q.depths++
	}
}

// removeOrder removes an order from the queue by price and ID.
// A level that becomes empty is deleted immediately.
func (q *queue) removeOrder(price int64, id uint64) {
	skipElement, ok := q.priceList[price]
	if !ok {
		return
	}
	unit, _ := skipElement.Value.(*priceUnit)

	order, ok := q.orders[id]
	if !ok {
		return
	}

	// Remove from linked list
	if order.prev != nil {
		order.prev.next = order.next
	} else {
		unit.head = order.next
	}

	if order.next != nil {
		order.next.prev = order.prev
	} else {
		unit.tail = order.prev
	}

	// Clear pointers to avoid leaks
	order.next = nil
	order.prev = nil

	unit.totalSize -= order.Quantity
	unit.count--
	delete(q.orders, id)
	q.totalOrders--

	if unit.count == 0 {
		q.depthList.RemoveElement(skipElement)
		delete(q.priceList, price)
		q.depths--
	}
}

// peekHeadOrder returns the order at the front of the queue (best price) without removing it.
func (q *queue) peekHeadOrder() *Order {
	el := q.depthList.Front()
	if el == nil {
		return nil
	}

	unit, _ := el.Value.(*priceUnit)
	return unit.head
}

// popHeadOrder removes and returns the order at the front of the queue.
func (q *queue) popHeadOrder() *Order {
	ord := q.peekHeadOrder()

	if ord != nil {
		q.removeOrder(ord.Price, ord.ID)
	}

	return ord
}

// bestPrice returns the extremal price of the queue: highest for bids,
// lowest for asks. ok is false when the queue is empty.
func (q *queue) bestPrice() (price int64, ok bool) {
	el := q.depthList.Front()
	if el == nil {
		return 0, false
	}

	price, _ = el.Key().(int64)
	return price, true
}

// sizeAt returns the aggregated order size resting at one price level.
func (q *queue) sizeAt(price int64) int64 {
	el, ok := q.priceList[price]
	if !ok {
		return 0
	}

	unit, _ := el.Value.(*priceUnit)
	return unit.totalSize
}

// orderCount returns the total number of orders in the queue.
func (q *queue) orderCount() int64 {
	return q.totalOrders
}

// depthCount returns the number of price levels in the queue.
func (q *queue) depthCount() int64 {
	return q.depths
}

// toSnapshot serializes the queue into a slice of Order structs.
// It iterates through the skip list (price levels) and then the linked list
// (orders) to preserve priority.
func (q *queue) toSnapshot() []Order {
	snapshots := make([]Order, 0, q.totalOrders)

	// Iterate over all price levels
	elem := q.depthList.Front()
	for elem != nil {
		unit := elem.Value.(*priceUnit)

		// Iterate over all orders at this price level
		order := unit.head
		for order != nil {
			snapshots = append(snapshots, Order{
				ID:       order.ID,
				Side:     order.Side,
				Price:    order.Price,
				Quantity: order.Quantity,
				Sequence: order.Sequence,
			})
			order = order.next
		}

		elem = elem.Next()
	}

	return snapshots
}

// depth returns the aggregated order book depth up to the specified limit.
func (q *queue) depth(limit uint32) []*DepthItem {
	result := make([]*DepthItem, 0, limit)

	el := q.depthList.Front()

	var i uint32 = 0
	for i < limit && el != nil {
		unit, _ := el.Value.(*priceUnit)
		d := DepthItem{
			Price: unit.head.Price,
			Size:  unit.totalSize,
			Count: unit.count,
		}

		result = append(result, &d)

		el = el.Next()
		i++
	}

	return result
}
