package dllist

// Storage стратегия выделения узлов списка.
// Список никогда не создаёт и не освобождает узлы сам, все обращения
// идут через данную стратегию.
type Storage[T comparable] interface {
	// Allocate выдаёт новый узел привязанный к data без связей.
	Allocate(data *T) (*Node[T], error)

	// Deallocate освобождает узел ранее выданный Allocate.
	Deallocate(n *Node[T])
}

// Heap хранилище выделяющее каждый узел в куче.
// Ограничений на количество узлов нет, выделение не бывает неудачным.
type Heap[T comparable] struct{}

// Allocate для реализации Storage.
func (Heap[T]) Allocate(data *T) (*Node[T], error) {
	return NewNode(data), nil
}

// Deallocate для реализации Storage.
func (Heap[T]) Deallocate(n *Node[T]) {
	n.cleanup()
}

var _ Storage[int] = Heap[int]{}
