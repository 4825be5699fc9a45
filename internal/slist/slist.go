package slist

import (
	"io"

	"github.com/sirkon/lists/internal/listerr"
	"github.com/sirkon/lists/internal/listprint"
)

// New конструктор пустого односвязного списка.
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// List односвязный список. Нулевое значение готово к использованию.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type List[T comparable] struct {
	head *node[T]
	size int
}

// Front возвращает ссылку на первое значение списка, либо nil для пустого списка.
// Ссылка становится недействительной после удаления этого элемента.
func (l *List[T]) Front() *T {
	if l.head == nil {
		return nil
	}

	return &l.head.value
}

// PushFront добавление значения в начало списка.
func (l *List[T]) PushFront(v T) {
	l.head = &node[T]{
		next:  l.head,
		value: v,
	}
	l.size++
}

// PushBack добавление значения в конец списка.
func (l *List[T]) PushBack(v T) {
	n := &node[T]{
		value: v,
	}

	if l.head == nil {
		l.head = n
		l.size++
		return
	}

	cur := l.head
	for cur.next != nil {
		cur = cur.next
	}
	cur.next = n
	l.size++
}

// PopFront удаление первого элемента. Ничего не делает на пустом списке.
func (l *List[T]) PopFront() {
	if l.head == nil {
		return
	}

	h := l.head
	l.head = h.next
	l.size--
	h.cleanup()
}

// PopBack удаление последнего элемента. Ничего не делает на пустом списке.
func (l *List[T]) PopBack() {
	if l.head == nil {
		return
	}

	if l.head.next == nil {
		l.PopFront()
		return
	}

	prev := l.head
	for prev.next.next != nil {
		prev = prev.next
	}
	last := prev.next
	prev.next = nil
	l.size--
	last.cleanup()
}

// Find возвращает индекс первого вхождения v или listerr.NotFound.
func (l *List[T]) Find(v T) int {
	var index int
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.value == v {
			return index
		}
		index++
	}

	return listerr.NotFound
}

// Insert вставка значения так, чтобы оно оказалось на позиции index.
// Допустимы индексы из [0, Len()], иначе возвращается ошибка
// listerr.ErrOutOfRange и список не меняется.
func (l *List[T]) Insert(v T, index int) error {
	if err := listerr.CheckInsert(index, l.size); err != nil {
		return err
	}

	switch index {
	case 0:
		l.PushFront(v)
	case l.size:
		l.PushBack(v)
	default:
		prev := l.at(index - 1)
		prev.next = &node[T]{
			next:  prev.next,
			value: v,
		}
		l.size++
	}

	return nil
}

// Remove удаление элемента на позиции index. Допустимы индексы из [0, Len()-1],
// иначе возвращается ошибка listerr.ErrOutOfRange и список не меняется.
// В том числе ошибка возвращается для пустого списка.
func (l *List[T]) Remove(index int) error {
	if err := listerr.CheckRemove(index, l.size); err != nil {
		return err
	}

	switch index {
	case 0:
		l.PopFront()
	case l.size - 1:
		l.PopBack()
	default:
		prev := l.at(index - 1)
		n := prev.next
		prev.next = n.next
		l.size--
		n.cleanup()
	}

	return nil
}

// Len возвращает количество элементов списка.
func (l *List[T]) Len() int {
	return l.size
}

// Empty проверка на пустоту.
func (l *List[T]) Empty() bool {
	return l.size == 0
}

// Clear удаление всех элементов. Может вызываться повторно.
func (l *List[T]) Clear() {
	for l.head != nil {
		h := l.head
		l.head = h.next
		h.cleanup()
	}
	l.size = 0
}

// Each обход значений от начала к концу, прекращается если f вернула false.
func (l *List[T]) Each(f func(v T) bool) {
	for cur := l.head; cur != nil; cur = cur.next {
		if !f(cur.value) {
			return
		}
	}
}

// Values копия значений списка в порядке обхода.
// Для пустого контейнера возвращается пустой, но не nil срез.
func (l *List[T]) Values() []T {
	res := make([]T, 0, l.size)
	l.Each(func(v T) bool {
		res = append(res, v)
		return true
	})

	return res
}

// Print вывод значений через пробел с переводом строки в конце.
func (l *List[T]) Print(opts ...listprint.Option) {
	listprint.Print[T](l.Each, opts...)
}

// Fprint то же самое, что и Print, но в данный приёмник и с возвратом ошибки.
func (l *List[T]) Fprint(w io.Writer, opts ...listprint.Option) error {
	return listprint.Fprint[T](w, l.Each, opts...)
}

// at возвращает узел на позиции index, которая должна быть в [0, size).
func (l *List[T]) at(index int) *node[T] {
	cur := l.head
	for i := 0; i < index; i++ {
		cur = cur.next
	}

	return cur
}
