package eviction

import "container/list"

// lru orders keys by access. Front is most recently used, back is least.
type lru struct {
	capacity int
	order    *list.List
	nodes    map[string]*list.Element
}

func newLRU(capacity int) *lru {
	if capacity < 1 {
		capacity = 1
	}
	return &lru{
		capacity: capacity,
		order:    list.New(),
		nodes:    make(map[string]*list.Element, capacity),
	}
}

func (l *lru) Touch(k string) {
	if e, ok := l.nodes[k]; ok {
		l.order.MoveToFront(e)
	}
}

func (l *lru) Add(k string) {
	if e, ok := l.nodes[k]; ok {
		l.order.MoveToFront(e)
		return
	}
	l.nodes[k] = l.order.PushFront(k)
}

// Victim returns the least recently used key once the shard is at capacity.
func (l *lru) Victim(size int) (string, bool) {
	if size < l.capacity {
		return "", false
	}
	back := l.order.Back()
	if back == nil {
		return "", false
	}
	k := l.order.Remove(back).(string)
	delete(l.nodes, k)
	return k, true
}
