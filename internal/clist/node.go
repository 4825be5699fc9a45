package clist

type node[T any] struct {
	next *node[T]

	value T
}

func (n *node[T]) cleanup() {
	n.next = nil
}
