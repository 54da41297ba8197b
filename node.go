package dllist

// NewNode конструктор узла привязанного к данному значению.
// Нужен пользовательским реализациям Storage.
func NewNode[T comparable](data *T) *Node[T] {
	return new(Node[T]).Init(data)
}

// Node узел двусвязного списка.
// Узел не владеет значением, а ссылается на значение принадлежащее пользователю.
// Поэтому изменения значения снаружи видны списку сразу же.
type Node[T comparable] struct {
	prev *Node[T]
	next *Node[T]

	data *T

	// индекс узла в арене Pool, другими хранилищами не используется
	slot int
}

// Init конструирование узла на месте: привязка к значению со сбросом связей.
// Предназначено только для реализаций Storage, перепривязка живого узла
// находящегося в списке ломает список.
func (n *Node[T]) Init(data *T) *Node[T] {
	n.prev = nil
	n.next = nil
	n.data = data
	return n
}

// Value возврат текущего значения на которое ссылается узел.
func (n *Node[T]) Value() T {
	return *n.data
}

// Ref возврат ссылки на значение.
func (n *Node[T]) Ref() *T {
	return n.data
}

// Prev предыдущий узел.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// Next следующий узел.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Equal проверка равенства узлов: совпадают связи и значения.
func (n *Node[T]) Equal(other *Node[T]) bool {
	if n == other {
		return true
	}

	if n == nil || other == nil {
		return false
	}

	return n.prev == other.prev && n.next == other.next && *n.data == *other.data
}

// Assign копирует содержимое значения узла src в значение, к которому
// привязан n. Связи и сама привязка при этом не меняются.
func (n *Node[T]) Assign(src *Node[T]) {
	*n.data = *src.data
}

func (n *Node[T]) cleanup() {
	n.prev = nil
	n.next = nil // для упрощения работы GC
	n.data = nil
}
