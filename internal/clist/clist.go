package clist

import (
	"io"

	"github.com/sirkon/lists/internal/listerr"
	"github.com/sirkon/lists/internal/listprint"
)

// New конструктор пустого кольцевого списка.
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// List кольцевой односвязный список. Курсор указывает на логический
// конец списка, следующий за ним узел является логическим началом.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type List[T comparable] struct {
	cursor *node[T]
	size   int
}

// Front ссылка на значение в начале списка, nil для пустого списка.
func (l *List[T]) Front() *T {
	if l.cursor == nil {
		return nil
	}

	return &l.cursor.next.value
}

// Back ссылка на значение в конце списка (под курсором), nil для пустого списка.
func (l *List[T]) Back() *T {
	if l.cursor == nil {
		return nil
	}

	return &l.cursor.value
}

// Advance сдвиг курсора вперёд: текущее начало списка становится его концом.
// Данные при этом не перемещаются.
func (l *List[T]) Advance() {
	if l.cursor == nil {
		return
	}

	l.cursor = l.cursor.next
}

// PushFront добавление значения между курсором и началом списка.
func (l *List[T]) PushFront(v T) {
	l.size++
	if l.cursor == nil {
		l.init(v)
		return
	}

	l.cursor.next = &node[T]{
		next:  l.cursor.next,
		value: v,
	}
}

// PushBack добавление значения после курсора с переводом курсора на него.
func (l *List[T]) PushBack(v T) {
	l.size++
	if l.cursor == nil {
		l.init(v)
		return
	}

	l.cursor.next = &node[T]{
		next:  l.cursor.next,
		value: v,
	}
	l.cursor = l.cursor.next
}

// PopFront удаление начала списка. Ничего не делает на пустом списке.
func (l *List[T]) PopFront() {
	if l.cursor == nil {
		return
	}

	if l.cursor.next == l.cursor {
		l.drop()
		return
	}

	h := l.cursor.next
	l.cursor.next = h.next
	l.size--
	h.cleanup()
}

// PopBack удаление конца списка. Требует обхода всего кольца ради поиска
// предшественника курсора. Ничего не делает на пустом списке.
func (l *List[T]) PopBack() {
	if l.cursor == nil {
		return
	}

	if l.cursor.next == l.cursor {
		l.drop()
		return
	}

	prev := l.cursor.next
	for prev.next != l.cursor {
		prev = prev.next
	}
	prev.next = l.cursor.next

	c := l.cursor
	l.cursor = prev
	l.size--
	c.cleanup()
}

// Find индекс первого вхождения v считая от начала списка, либо listerr.NotFound.
// Проходится не более Len() узлов.
func (l *List[T]) Find(v T) int {
	if l.cursor == nil {
		return listerr.NotFound
	}

	cur := l.cursor.next
	for i := 0; i < l.size; i++ {
		if cur.value == v {
			return i
		}
		cur = cur.next
	}

	return listerr.NotFound
}

// Insert вставка v на позицию index из [0, Len()] считая от начала списка.
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

// Remove удаление элемента на позиции index из [0, Len()-1] считая от начала.
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

// Len количество элементов.
func (l *List[T]) Len() int {
	return l.size
}

// Empty проверка на пустоту.
func (l *List[T]) Empty() bool {
	return l.size == 0
}

// Clear удаление всех элементов. Обходит ровно Len() узлов.
func (l *List[T]) Clear() {
	if l.cursor == nil {
		return
	}

	cur := l.cursor.next
	for i := 0; i < l.size; i++ {
		next := cur.next
		cur.cleanup()
		cur = next
	}
	l.cursor = nil
	l.size = 0
}

// Each обход ровно Len() значений начиная с начала списка.
func (l *List[T]) Each(f func(v T) bool) {
	if l.cursor == nil {
		return
	}

	cur := l.cursor.next
	for i := 0; i < l.size; i++ {
		if !f(cur.value) {
			return
		}
		cur = cur.next
	}
}

// Values копия значений от начала до конца списка.
// Для пустого контейнера возвращается пустой, но не nil срез.
func (l *List[T]) Values() []T {
	res := make([]T, 0, l.size)
	l.Each(func(v T) bool {
		res = append(res, v)
		return true
	})

	return res
}

// Print вывод значений от начала до конца списка.
func (l *List[T]) Print(opts ...listprint.Option) {
	listprint.Print[T](l.Each, opts...)
}

// Fprint вывод значений от начала до конца списка в w.
func (l *List[T]) Fprint(w io.Writer, opts ...listprint.Option) error {
	return listprint.Fprint[T](w, l.Each, opts...)
}

// init создание кольца из одного узла замкнутого на себя.
func (l *List[T]) init(v T) {
	n := &node[T]{
		value: v,
	}
	n.next = n
	l.cursor = n
}

// drop удаление единственного узла кольца.
func (l *List[T]) drop() {
	c := l.cursor
	l.cursor = nil
	l.size = 0
	c.cleanup()
}

func (l *List[T]) at(index int) *node[T] {
	cur := l.cursor.next
	for i := 0; i < index; i++ {
		cur = cur.next
	}

	return cur
}
