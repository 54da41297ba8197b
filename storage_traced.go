package dllist

import "github.com/sirkon/dllist/logging"

// Traced оборачивает хранилище, сообщая логгеру о каждом выделении,
// неудачном выделении и освобождении узла. name используется чтобы
// различать хранилища в логах.
func Traced[T comparable](storage Storage[T], name string, logger logging.Logger) Storage[T] {
	return &tracedStorage[T]{
		storage: storage,
		name:    name,
		logger:  logger,
	}
}

type tracedStorage[T comparable] struct {
	storage Storage[T]
	name    string
	logger  logging.Logger
	live    int
}

func (s *tracedStorage[T]) Allocate(data *T) (*Node[T], error) {
	n, err := s.storage.Allocate(data)
	if err != nil {
		s.logger.NodeAllocationFailed(s.name, err)
		return nil, err
	}

	s.live++
	s.logger.NodeAllocated(s.name, s.live)
	return n, nil
}

func (s *tracedStorage[T]) Deallocate(n *Node[T]) {
	s.storage.Deallocate(n)
	s.live--
	s.logger.NodeDeallocated(s.name, s.live)
}
