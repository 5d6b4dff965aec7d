// Package radius реализует расширяемое разрешение эффективного радиуса
// разрушения. Радиус, в отличие от глубины, должны уметь переопределять
// и сам инструмент, и сторонние расширения, не знающие друг о друге —
// отсюда цепочка слушателей. Глубина разрешается прямым запросом к
// инструменту и цепочки не имеет.
//
// Политика композиции: слушатели вызываются в порядке регистрации,
// каждый получает значение, возвращенное предыдущим. Начальное значение
// цепочки — базовый радиус инструмента.
package radius

import (
	"sync"

	"github.com/annel0/magna-tools/world"
)

// Listener получает стек инструмента и текущее значение радиуса
// и возвращает новое значение.
type Listener func(stack world.Stack, current int) int

// Subscription возвращается при регистрации; позволяет снять слушателя.
type Subscription interface {
	Unsubscribe()
}

// Chain — упорядоченная цепочка слушателей радиуса
type Chain struct {
	mu      sync.RWMutex
	entries []entry
	nextID  int
}

type entry struct {
	id int
	fn Listener
}

// NewChain создает пустую цепочку
func NewChain() *Chain {
	return &Chain{}
}

// Register добавляет слушателя в конец цепочки
func (c *Chain) Register(l Listener) Subscription {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.entries = append(c.entries, entry{id: id, fn: l})
	c.mu.Unlock()

	return &chainSub{chain: c, id: id}
}

// Resolve прогоняет базовый радиус через цепочку слушателей.
// Пустая цепочка возвращает базовый радиус без изменений.
func (c *Chain) Resolve(stack world.Stack, base int) int {
	c.mu.RLock()
	entries := make([]entry, len(c.entries))
	copy(entries, c.entries)
	c.mu.RUnlock()

	result := base
	for _, e := range entries {
		result = e.fn(stack, result)
	}
	return result
}

// Len возвращает число зарегистрированных слушателей
func (c *Chain) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

type chainSub struct {
	chain *Chain
	id    int
}

func (s *chainSub) Unsubscribe() {
	c := s.chain
	c.mu.Lock()
	for i, e := range c.entries {
		if e.id == s.id {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
}
