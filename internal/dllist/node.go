package dllist

// node узел двусвязного списка. Ссылка prev не является владеющей:
// узлом владеет предшественник через next, либо сам список через first.
type node[T any] struct {
	prev *node[T]
	next *node[T]

	value T
}

// swap обмен ссылок вперёд и назад.
func (n *node[T]) swap() {
	n.prev, n.next = n.next, n.prev
}

func (n *node[T]) cleanup() {
	n.prev = nil
	n.next = nil
}
