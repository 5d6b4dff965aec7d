// Package event предоставляет внутрипроцессную шину событий разрушения.
// Расширения подписываются на события, не зацепляясь за сам пайплайн.
// Доставка синхронная: обработчики выполняются на потоке взаимодействия.
package event

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Envelope описывает универсальный контейнер события.
type Envelope struct {
	ID        string      // Глобально уникальный идентификатор (UUID).
	Timestamp time.Time   // Время создания события (UTC).
	EventType string      // Тип события (BlockBroken, BreakSweep…).
	Payload   interface{} // Типизированная полезная нагрузка.
}

// NewEnvelope создает конверт с заполненными ID и временной меткой
func NewEnvelope(eventType string, payload interface{}) *Envelope {
	return &Envelope{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		Payload:   payload,
	}
}

// Handler потребляет события.
type Handler func(ev *Envelope)

// Subscription возвращается при подписке; позволяет отписаться.
type Subscription interface {
	Unsubscribe()
}

// Stats агрегированные метрики шины.
type Stats struct {
	Published uint64
	Delivered uint64
}

// Bus определяет абстракцию шины событий разрушения.
type Bus interface {
	Publish(ev *Envelope)
	Subscribe(types []string, h Handler) Subscription
	Metrics() Stats
}

//================ In-Memory implementation =================//

type memoryBus struct {
	mu          sync.RWMutex
	subscribers map[int]subscriber
	nextID      int
	stats       Stats
}

type subscriber struct {
	types   []string
	handler Handler
}

// NewMemoryBus создаёт синхронную in-memory шину
func NewMemoryBus() Bus {
	return &memoryBus{
		subscribers: make(map[int]subscriber),
	}
}

func (mb *memoryBus) Publish(ev *Envelope) {
	mb.mu.RLock()
	subs := make([]subscriber, 0, len(mb.subscribers))
	for _, sub := range mb.subscribers {
		subs = append(subs, sub)
	}
	mb.mu.RUnlock()

	delivered := uint64(0)
	for _, sub := range subs {
		if !matchType(ev.EventType, sub.types) {
			continue
		}
		sub.handler(ev)
		delivered++
	}

	mb.mu.Lock()
	mb.stats.Published++
	mb.stats.Delivered += delivered
	mb.mu.Unlock()
}

// Subscribe подписывает обработчик на указанные типы событий.
// Пустой список типов означает подписку на все события.
func (mb *memoryBus) Subscribe(types []string, h Handler) Subscription {
	mb.mu.Lock()
	id := mb.nextID
	mb.nextID++
	mb.subscribers[id] = subscriber{types: types, handler: h}
	mb.mu.Unlock()

	return &memSub{bus: mb, id: id}
}

func (mb *memoryBus) Metrics() Stats {
	mb.mu.RLock()
	defer mb.mu.RUnlock()
	return mb.stats
}

func matchType(eventType string, types []string) bool {
	if len(types) == 0 {
		return true
	}
	for _, t := range types {
		if t == eventType {
			return true
		}
	}
	return false
}

type memSub struct {
	bus *memoryBus
	id  int
}

func (s *memSub) Unsubscribe() {
	s.bus.mu.Lock()
	delete(s.bus.subscribers, s.id)
	s.bus.mu.Unlock()
}
