package listprint

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sirkon/errors"
)

// Walker обход контейнера: yield вызывается для каждого значения по порядку,
// обход прекращается если yield вернул false.
type Walker[T any] func(yield func(T) bool)

// Print вывод значений с параметрами opts. Ошибки записи не возвращаются,
// а передаются логгеру.
func Print[T any](walk Walker[T], opts ...Option) {
	p := newPrinter(opts)
	if err := write(p.dst(), p.sep, walk); err != nil {
		p.logger(err)
	}
}

// Fprint вывод значений в w с возвратом ошибки записи. Опции применяются
// так же, как и в Print, кроме WithWriter и WithLogger: приёмником всегда
// служит w, а ошибка возвращается вызывающему.
func Fprint[T any](w io.Writer, walk Walker[T], opts ...Option) error {
	p := newPrinter(opts)
	return write(w, p.sep, walk)
}

func write[T any](w io.Writer, sep string, walk Walker[T]) error {
	bw := bufio.NewWriter(w)

	var err error
	first := true
	walk(func(v T) bool {
		if !first {
			if _, err = bw.WriteString(sep); err != nil {
				err = errors.Wrap(err, "write separator")
				return false
			}
		}
		first = false

		if _, err = fmt.Fprint(bw, v); err != nil {
			err = errors.Wrap(err, "write value")
			return false
		}

		return true
	})
	if err != nil {
		return err
	}

	if err := bw.WriteByte('\n'); err != nil {
		return errors.Wrap(err, "write line terminator")
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "flush collected output")
	}

	return nil
}
