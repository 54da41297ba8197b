package dllist

import "github.com/sirkon/errors"

const (
	// ErrorSlotOccupied попытка получить второй живой узел из хранилища на один узел.
	ErrorSlotOccupied errors.Const = "fixed slot storage already holds a live node"

	// ErrorPoolExhausted в арене не осталось свободных узлов.
	ErrorPoolExhausted errors.Const = "pool storage has no free nodes"

	// ErrorNilValue вставка узла без значения.
	ErrorNilValue errors.Const = "value reference must not be nil"

	// ErrorBrokenInvariant нарушена структура списка.
	ErrorBrokenInvariant errors.Const = "broken list invariant"
)
