package dllist

import "github.com/sirkon/errors"

// NewPool конструктор арены на capacity узлов.
func NewPool[T comparable](capacity int) *Pool[T] {
	if capacity < 1 {
		panic(errors.Newf("pool capacity must be positive, got %d", capacity))
	}

	p := &Pool[T]{
		nodes: make([]Node[T], capacity),
		used:  make([]bool, capacity),
		free:  make([]int, capacity),
	}

	// первыми выдаются узлы с меньшими индексами
	for i := range p.free {
		p.free[i] = capacity - 1 - i
	}

	return p
}

// Pool хранилище с фиксированной ареной узлов.
// Свободные узлы адресуются индексами в арене и лежат в стеке,
// так что последний освобождённый узел выдаётся первым.
type Pool[T comparable] struct {
	nodes []Node[T]
	used  []bool
	free  []int
}

// Allocate для реализации Storage.
func (p *Pool[T]) Allocate(data *T) (*Node[T], error) {
	if len(p.free) == 0 {
		return nil, errors.Wrapf(ErrorPoolExhausted, "take one of %d nodes", len(p.nodes))
	}

	i := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	p.used[i] = true

	n := p.nodes[i].Init(data)
	n.slot = i
	return n, nil
}

// Deallocate для реализации Storage. Узлы не из этой арены игнорируются.
func (p *Pool[T]) Deallocate(n *Node[T]) {
	i := n.slot
	if i < 0 || i >= len(p.nodes) || &p.nodes[i] != n || !p.used[i] {
		return
	}

	n.cleanup()
	p.used[i] = false
	p.free = append(p.free, i)
}

// Len число выданных узлов.
func (p *Pool[T]) Len() int {
	return len(p.nodes) - len(p.free)
}

// Cap ёмкость арены.
func (p *Pool[T]) Cap() int {
	return len(p.nodes)
}

var _ Storage[int] = &Pool[int]{}
