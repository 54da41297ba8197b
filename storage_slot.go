package dllist

// NewSlot конструктор хранилища на один узел.
func NewSlot[T comparable]() *Slot[T] {
	return &Slot[T]{}
}

// Slot хранилище с единственным местом под узел, которое переиспользуется
// от выделения к выделению. Подходит только для списков, в которых никогда
// не бывает больше одного живого узла: второе выделение до освобождения
// первого отклоняется с ErrorSlotOccupied.
type Slot[T comparable] struct {
	node Node[T]
	busy bool
}

// Allocate для реализации Storage.
func (s *Slot[T]) Allocate(data *T) (*Node[T], error) {
	if s.busy {
		return nil, ErrorSlotOccupied
	}

	s.busy = true
	return s.node.Init(data), nil
}

// Deallocate для реализации Storage. Чужие узлы игнорируются.
func (s *Slot[T]) Deallocate(n *Node[T]) {
	if !s.busy || n != &s.node {
		return
	}

	s.node.cleanup()
	s.busy = false
}

// Busy занято ли место.
func (s *Slot[T]) Busy() bool {
	return s.busy
}

var _ Storage[int] = &Slot[int]{}
