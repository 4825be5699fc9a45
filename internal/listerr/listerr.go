package listerr

import "github.com/sirkon/errors"

// NotFound индекс возвращаемый поиском при отсутствии значения в контейнере.
// Ни один действительный индекс не может быть отрицательным.
const NotFound = -1

// ErrOutOfRange индекс выходит за пределы допустимого для операции диапазона.
const ErrOutOfRange errors.Const = "index out of range"

// OutOfRange конструктор ошибки выхода за пределы диапазона для операции op
// над контейнером длины size.
func OutOfRange(op string, index, size int) error {
	return errors.Wrap(ErrOutOfRange, op).
		Int("index", index).
		Int("size", size)
}

// IsOutOfRange проверка, что ошибка вызвана выходом индекса за пределы диапазона.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

// CheckInsert проверка индекса вставки: допустим диапазон [0, size].
func CheckInsert(index, size int) error {
	if index < 0 || index > size {
		return OutOfRange("insert", index, size)
	}

	return nil
}

// CheckRemove проверка индекса удаления: допустим диапазон [0, size-1].
// Для пустого контейнера любой индекс недопустим.
func CheckRemove(index, size int) error {
	if index < 0 || index >= size {
		return OutOfRange("remove", index, size)
	}

	return nil
}
