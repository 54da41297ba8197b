// Package dllist двусвязный список с подключаемой стратегией выделения узлов.
package dllist

import "github.com/sirkon/errors"

// New конструктор пустого двусвязного списка узлы которого выделяются через storage.
func New[T comparable](storage Storage[T]) *List[T] {
	return &List[T]{
		storage: storage,
	}
}

// NewHeap конструктор пустого списка с узлами в куче.
func NewHeap[T comparable]() *List[T] {
	return New[T](Heap[T]{})
}

// List двусвязный список ссылок на значения принадлежащие пользователю.
// Пользователь обязан поддерживать значения живыми и неизменными, пока
// на них ссылаются узлы, если изменения не задуманы.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type List[T comparable] struct {
	storage Storage[T]

	head *Node[T]
	tail *Node[T]
	size int
}

// InsertBack добавление ссылки на значение в конец списка с возвратом созданного узла.
// При ошибке выделения узла список не меняется.
func (l *List[T]) InsertBack(data *T) (*Node[T], error) {
	n, err := l.allocate(data)
	if err != nil {
		return nil, err
	}

	if l.tail == nil {
		l.head = n
		l.tail = n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}

	l.size++
	return n, nil
}

// InsertFront добавление ссылки на значение в начало списка с возвратом созданного узла.
func (l *List[T]) InsertFront(data *T) (*Node[T], error) {
	n, err := l.allocate(data)
	if err != nil {
		return nil, err
	}

	if l.head == nil {
		l.head = n
		l.tail = n
	} else {
		n.next = l.head
		l.head.prev = n
		l.head = n
	}

	l.size++
	return n, nil
}

// Find поиск узла со значением равным *data.
// Сначала проверяются первый и последний узлы, затем список
// просматривается от начала. Возвращает nil если узла нет.
func (l *List[T]) Find(data *T) *Node[T] {
	if l.head == nil || data == nil {
		return nil
	}

	v := *data
	switch {
	case *l.head.data == v:
		return l.head
	case *l.tail.data == v:
		return l.tail
	}

	for n := l.head.next; n != nil; n = n.next {
		if *n.data == v {
			return n
		}
	}

	return nil
}

// Remove удаление узла найденного так же, как это делает Find.
// Возвращает false если такого узла не было.
func (l *List[T]) Remove(data *T) bool {
	n := l.Find(data)
	if n == nil {
		return false
	}

	switch n {
	case l.head:
		l.head = n.next
		if l.head == nil {
			// в списке был только один элемент
			l.tail = nil
		} else {
			l.head.prev = nil
		}
	case l.tail:
		l.tail = n.prev
		l.tail.next = nil
	default:
		n.prev.next = n.next
		n.next.prev = n.prev
	}

	l.size--
	l.storage.Deallocate(n)
	return true
}

// Clear удаление всех узлов списка с возвратом их в хранилище.
func (l *List[T]) Clear() {
	n := l.head
	for n != nil {
		next := n.next
		l.storage.Deallocate(n)
		n = next
	}

	l.head = nil
	l.tail = nil
	l.size = 0
}

// Prev узел перед n. Узел n должен принадлежать списку.
func (l *List[T]) Prev(n *Node[T]) *Node[T] {
	return n.prev
}

// Next узел после n. Узел n должен принадлежать списку.
func (l *List[T]) Next(n *Node[T]) *Node[T] {
	return n.next
}

// Head первый узел списка.
func (l *List[T]) Head() *Node[T] {
	return l.head
}

// Tail последний узел списка.
func (l *List[T]) Tail() *Node[T] {
	return l.tail
}

// Len число узлов в списке.
func (l *List[T]) Len() int {
	return l.size
}

// Empty пуст ли список.
func (l *List[T]) Empty() bool {
	return l.head == nil && l.tail == nil
}

// Values значения списка от начала к концу на момент вызова.
func (l *List[T]) Values() []T {
	res := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		res = append(res, *n.data)
	}

	return res
}

func (l *List[T]) allocate(data *T) (*Node[T], error) {
	if data == nil {
		return nil, ErrorNilValue
	}

	n, err := l.storage.Allocate(data)
	if err != nil {
		return nil, errors.Wrap(err, "allocate node")
	}

	return n, nil
}
