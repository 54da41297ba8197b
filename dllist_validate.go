package dllist

import "github.com/sirkon/errors"

// Validate проверка структуры списка: согласованность начала, конца и
// длины, взаимность связей соседних узлов, достижимость конца из начала
// ровно за Len шагов. Возвращает ошибку с ErrorBrokenInvariant в основе
// для первого найденного нарушения.
func (l *List[T]) Validate() error {
	if (l.head == nil) != (l.tail == nil) {
		return errors.Wrapf(
			ErrorBrokenInvariant,
			"head is set: %t, tail is set: %t",
			l.head != nil,
			l.tail != nil,
		)
	}

	if l.head == nil {
		if l.size != 0 {
			return errors.Wrapf(ErrorBrokenInvariant, "empty list has length %d", l.size)
		}

		return nil
	}

	if l.head.prev != nil {
		return errors.Wrap(ErrorBrokenInvariant, "head has a previous node")
	}
	if l.tail.next != nil {
		return errors.Wrap(ErrorBrokenInvariant, "tail has a next node")
	}
	if l.size == 1 && l.head != l.tail {
		return errors.Wrap(ErrorBrokenInvariant, "single node list has distinct head and tail")
	}

	var count int
	var prev *Node[T]
	for n := l.head; n != nil; n = n.next {
		if n.prev != prev {
			return errors.Wrapf(ErrorBrokenInvariant, "node %d does not link back to its predecessor", count)
		}

		count++
		prev = n
		if count > l.size {
			return errors.Wrapf(ErrorBrokenInvariant, "more than %d nodes are reachable from head", l.size)
		}
	}

	if prev != l.tail {
		return errors.Wrap(ErrorBrokenInvariant, "walk from head does not end at tail")
	}
	if count != l.size {
		return errors.Wrapf(ErrorBrokenInvariant, "list length is %d, got %d nodes walking from head", l.size, count)
	}

	return nil
}
