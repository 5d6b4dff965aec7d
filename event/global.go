package event

var globalBus Bus

// Init устанавливает глобальную шину.
func Init(bus Bus) { globalBus = bus }

// Publish отправляет событие в глобальную шину, если она инициализирована.
func Publish(ev *Envelope) {
	if globalBus == nil {
		return
	}
	globalBus.Publish(ev)
}
