package stack

import "github.com/sirkon/lists/internal/slist"

// New конструктор пустого стека.
func New[T comparable]() *Stack[T] {
	return &Stack[T]{}
}

// Stack стек поверх односвязного списка, вершина стека это начало списка.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type Stack[T comparable] struct {
	list slist.List[T]
}

// Top ссылка на значение на вершине стека, nil для пустого стека.
func (s *Stack[T]) Top() *T {
	return s.list.Front()
}

// Push положить значение на вершину.
func (s *Stack[T]) Push(v T) {
	s.list.PushFront(v)
}

// Pop снять значение с вершины. На пустом стеке ничего не делает.
func (s *Stack[T]) Pop() {
	s.list.PopFront()
}

// Clear очистка стека.
func (s *Stack[T]) Clear() {
	s.list.Clear()
}

// Len количество значений в стеке.
func (s *Stack[T]) Len() int {
	return s.list.Len()
}

// Empty проверка на пустоту.
func (s *Stack[T]) Empty() bool {
	return s.list.Empty()
}
