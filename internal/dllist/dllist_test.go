package dllist_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sirkon/deepequal"
	"github.com/sirkon/errors"
	"github.com/sirkon/lists/internal/dllist"
	"github.com/sirkon/lists/internal/listerr"
	"github.com/sirkon/lists/internal/listprint"
	"github.com/sirkon/lists/internal/tlog"
	"golang.org/x/exp/slices"
)

func ExampleDLList() {
	l := dllist.New[int]()
	l.PushFront(1)
	l.PushFront(2)
	fmt.Println(*l.Front(), *l.Back())

	l.Reverse()
	fmt.Println(*l.Front(), *l.Back())

	l.PushBack(3)
	l.Print()
	l.PrintReverse()

	// Output:
	// 2 1
	// 1 2
	// 1 2 3
	// 3 2 1
}

func listOf(vs ...string) *dllist.DLList[string] {
	l := dllist.New[string]()
	for _, v := range vs {
		l.PushBack(v)
	}
	return l
}

func TestDLList(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		l := dllist.New[string]()
		if l.Front() != nil || l.Back() != nil {
			t.Error("empty list must have no boundaries")
		}

		l.PopFront()
		l.PopBack()
		l.Reverse()
		if !l.Empty() {
			t.Error("no-op operations changed the empty list")
		}

		tlog.ExpectOutOfRange(t, l.Remove(0))
		if l.Find("a") != listerr.NotFound {
			t.Error("nothing can be found in an empty list")
		}
	})

	t.Run("single", func(t *testing.T) {
		l := listOf("a")
		if l.Front() != l.Back() {
			t.Error("front and back must be the same value for a single element")
		}

		l.Reverse()
		deepequal.SideBySide(t, "reversed single", []string{"a"}, l.Values())

		l.PopBack()
		if l.Front() != nil || l.Back() != nil {
			t.Error("boundaries must be dropped together")
		}
	})

	t.Run("back-is-mutable", func(t *testing.T) {
		l := listOf("a", "b")
		*l.Back() = "z"
		deepequal.SideBySide(t, "values", []string{"a", "z"}, l.Values())
	})

	t.Run("reverse-twice", func(t *testing.T) {
		for size := 0; size < 6; size++ {
			l := dllist.New[int]()
			for i := 0; i < size; i++ {
				l.PushBack(i)
			}
			before := l.Values()
			l.Reverse()
			l.Reverse()
			if !slices.Equal(before, l.Values()) {
				t.Errorf("size %d: double reverse changed order %v -> %v", size, before, l.Values())
			}
		}
	})

	t.Run("reverse-walks", func(t *testing.T) {
		l := listOf("a", "b", "c", "d")
		l.Reverse()
		deepequal.SideBySide(t, "forward", []string{"d", "c", "b", "a"}, l.Values())

		var back []string
		l.EachReverse(func(v string) bool {
			back = append(back, v)
			return true
		})
		deepequal.SideBySide(t, "backward", []string{"a", "b", "c", "d"}, back)
	})

	t.Run("insert-both-halves", func(t *testing.T) {
		l := listOf("a", "b", "c", "d", "e", "f")
		if err := l.Insert("x", 1); err != nil {
			tlog.Error(t, errors.Wrap(err, "insert near head"))
			return
		}
		if err := l.Insert("y", 6); err != nil {
			tlog.Error(t, errors.Wrap(err, "insert near tail"))
			return
		}
		deepequal.SideBySide(t, "values", []string{"a", "x", "b", "c", "d", "e", "y", "f"}, l.Values())
		if l.Find("y") != 6 {
			t.Errorf("y expected at 6, got %d", l.Find("y"))
		}
	})

	t.Run("remove-both-halves", func(t *testing.T) {
		l := listOf("a", "b", "c", "d", "e", "f")
		if err := l.Remove(4); err != nil {
			tlog.Error(t, errors.Wrap(err, "remove near tail"))
			return
		}
		if err := l.Remove(1); err != nil {
			tlog.Error(t, errors.Wrap(err, "remove near head"))
			return
		}
		deepequal.SideBySide(t, "values", []string{"a", "c", "d", "f"}, l.Values())
	})

	t.Run("round-trip", func(t *testing.T) {
		l := listOf("a", "b")
		l.PushBack("c")
		l.PopBack()
		if *l.Front() != "a" || *l.Back() != "b" || l.Len() != 2 {
			t.Errorf("push/pop back did not restore the list: %v", l.Values())
		}
	})

	t.Run("out-of-range", func(t *testing.T) {
		l := listOf("a", "b", "c")
		tlog.ExpectOutOfRange(t, l.Remove(5))
		tlog.ExpectOutOfRange(t, l.Insert("z", 4))
		if l.Len() != 3 {
			t.Errorf("failed operations changed size to %d", l.Len())
		}
	})

	t.Run("clear", func(t *testing.T) {
		l := listOf("a", "b", "c")
		l.Clear()
		l.Clear()
		if !l.Empty() || l.Front() != nil || l.Back() != nil {
			t.Error("list must be empty after clear")
		}
	})

	t.Run("fprint", func(t *testing.T) {
		l := listOf("a", "b", "c")
		var buf bytes.Buffer
		if err := l.Fprint(&buf); err != nil {
			tlog.Error(t, errors.Wrap(err, "print forward"))
			return
		}
		if err := l.FprintReverse(&buf); err != nil {
			tlog.Error(t, errors.Wrap(err, "print backward"))
			return
		}
		if buf.String() != "a b c\nc b a\n" {
			t.Errorf("unexpected output %q", buf.String())
		}

		buf.Reset()
		if err := l.FprintReverse(&buf, listprint.WithSeparator("<")); err != nil {
			tlog.Error(t, errors.Wrap(err, "print backward with separator"))
			return
		}
		if buf.String() != "c<b<a\n" {
			t.Errorf("unexpected output %q", buf.String())
		}
	})

	t.Run("values-of-empty", func(t *testing.T) {
		l := listOf("a")
		l.PopBack()
		if vs := l.Values(); vs == nil || len(vs) != 0 {
			t.Errorf("empty non-nil slice expected, got %#v", vs)
		}
	})
}
