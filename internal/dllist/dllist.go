package dllist

import (
	"io"

	"github.com/sirkon/lists/internal/listerr"
	"github.com/sirkon/lists/internal/listprint"
)

// New конструктор пустого двусвязного списка.
func New[T comparable]() *DLList[T] {
	return &DLList[T]{}
}

// DLList двусвязный список.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type DLList[T comparable] struct {
	first *node[T]
	last  *node[T]
	size  int
}

// Front ссылка на первое значение списка, nil если список пуст.
func (l *DLList[T]) Front() *T {
	if l.first == nil {
		return nil
	}

	return &l.first.value
}

// Back ссылка на последнее значение списка, nil если список пуст.
func (l *DLList[T]) Back() *T {
	if l.last == nil {
		return nil
	}

	return &l.last.value
}

// PushFront добавление нового значения в начало списка.
func (l *DLList[T]) PushFront(v T) {
	n := &node[T]{
		next:  l.first,
		value: v,
	}
	l.size++

	if l.first == nil {
		l.first = n
		l.last = n
		return
	}

	l.first.prev = n
	l.first = n
}

// PushBack добавление нового значения в конец списка.
func (l *DLList[T]) PushBack(v T) {
	n := &node[T]{
		prev:  l.last,
		value: v,
	}
	l.size++

	if l.first == nil {
		l.first = n
		l.last = n
		return
	}

	l.last.next = n
	l.last = n
}

// PopFront удаление первого элемента списка. На пустом списке ничего не делает.
func (l *DLList[T]) PopFront() {
	if l.first == nil {
		return
	}

	f := l.first
	l.first = f.next
	if f.next == nil {
		// в списке был только один элемент
		l.last = nil
	} else {
		f.next.prev = nil
	}
	l.size--

	f.cleanup() // для упрощения работы GC
}

// PopBack удаление последнего элемента списка. На пустом списке ничего не делает.
func (l *DLList[T]) PopBack() {
	if l.last == nil {
		return
	}

	b := l.last
	l.last = b.prev
	if b.prev == nil {
		l.first = nil
	} else {
		b.prev.next = nil
	}
	l.size--

	b.cleanup()
}

// Find индекс первого вхождения v, либо listerr.NotFound.
func (l *DLList[T]) Find(v T) int {
	var index int
	for cur := l.first; cur != nil; cur = cur.next {
		if cur.value == v {
			return index
		}
		index++
	}

	return listerr.NotFound
}

// Insert вставка v на позицию index из [0, Len()]. Поиск позиции
// ведётся с ближайшего к ней конца списка.
func (l *DLList[T]) Insert(v T, index int) error {
	if err := listerr.CheckInsert(index, l.size); err != nil {
		return err
	}

	switch index {
	case 0:
		l.PushFront(v)
	case l.size:
		l.PushBack(v)
	default:
		next := l.at(index)
		n := &node[T]{
			prev:  next.prev,
			next:  next,
			value: v,
		}
		next.prev.next = n
		next.prev = n
		l.size++
	}

	return nil
}

// Remove удаление элемента на позиции index из [0, Len()-1].
func (l *DLList[T]) Remove(index int) error {
	if err := listerr.CheckRemove(index, l.size); err != nil {
		return err
	}

	switch index {
	case 0:
		l.PopFront()
	case l.size - 1:
		l.PopBack()
	default:
		n := l.at(index)
		n.prev.next = n.next
		n.next.prev = n.prev
		l.size--
		n.cleanup()
	}

	return nil
}

// Reverse разворот списка на месте.
func (l *DLList[T]) Reverse() {
	cur := l.first
	for cur != nil {
		cur.swap()
		cur = cur.prev
	}
	l.first, l.last = l.last, l.first
}

// Len количество элементов.
func (l *DLList[T]) Len() int {
	return l.size
}

// Empty проверка на пустоту.
func (l *DLList[T]) Empty() bool {
	return l.size == 0
}

// Clear удаление всех элементов списка.
func (l *DLList[T]) Clear() {
	for l.first != nil {
		f := l.first
		l.first = f.next
		f.cleanup()
	}
	l.last = nil
	l.size = 0
}

// Each обход от начала к концу.
func (l *DLList[T]) Each(f func(v T) bool) {
	for cur := l.first; cur != nil; cur = cur.next {
		if !f(cur.value) {
			return
		}
	}
}

// EachReverse обход от конца к началу.
func (l *DLList[T]) EachReverse(f func(v T) bool) {
	for cur := l.last; cur != nil; cur = cur.prev {
		if !f(cur.value) {
			return
		}
	}
}

// Values копия значений в порядке от начала к концу.
// Для пустого контейнера возвращается пустой, но не nil срез.
func (l *DLList[T]) Values() []T {
	res := make([]T, 0, l.size)
	l.Each(func(v T) bool {
		res = append(res, v)
		return true
	})

	return res
}

// Print вывод значений от начала к концу.
func (l *DLList[T]) Print(opts ...listprint.Option) {
	listprint.Print[T](l.Each, opts...)
}

// PrintReverse вывод значений от конца к началу.
func (l *DLList[T]) PrintReverse(opts ...listprint.Option) {
	listprint.Print[T](l.EachReverse, opts...)
}

// Fprint вывод значений от начала к концу в w.
func (l *DLList[T]) Fprint(w io.Writer, opts ...listprint.Option) error {
	return listprint.Fprint[T](w, l.Each, opts...)
}

// FprintReverse вывод значений от конца к началу в w.
func (l *DLList[T]) FprintReverse(w io.Writer, opts ...listprint.Option) error {
	return listprint.Fprint[T](w, l.EachReverse, opts...)
}

// at узел на позиции index из [0, size). Проход делается от first
// если index <= size/2 и от last иначе.
func (l *DLList[T]) at(index int) *node[T] {
	if index <= l.size/2 {
		cur := l.first
		for i := 0; i < index; i++ {
			cur = cur.next
		}
		return cur
	}

	cur := l.last
	for i := l.size - 1; i > index; i-- {
		cur = cur.prev
	}
	return cur
}
