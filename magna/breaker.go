package magna

import (
	"github.com/annel0/magna-tools/event"
	"github.com/annel0/magna-tools/logging"
	"github.com/annel0/magna-tools/vec"
	"github.com/annel0/magna-tools/world"
)

// BreakInRadius выполняет проход разрушения: обходит кандидатов
// стратегии finder, проверяет каждого предикатом valid, разрушает
// пригодные блоки и проводит их дропы через процессор.
//
// Сам центр области проходом НЕ разрушается: одиночный блок под
// курсором хост ломает своим обычным путем, проход добавляет только
// соседние позиции. Непригодный или пустой кандидат молча
// пропускается и никогда не прерывает проход.
func BreakInRadius(w world.World, agent world.Agent, center vec.Vec3, radius, depth int,
	finder BlockFinder, valid EligibilityFunc, proc Processor, playEffects bool) {

	if proc == nil {
		proc = IdentityProcessor
	}

	positions := finder.FindPositions(center, agent.Facing(), radius, depth)
	toolStack := agent.MainHandStack()

	broken := 0
	for _, pos := range positions {
		// Центр ломает обычный путь хоста
		if pos.Equals(center) {
			continue
		}

		state := w.GetBlockState(pos)
		if state.IsAir() {
			candidatesSkipped.Inc()
			continue
		}

		if valid != nil && !valid(w, pos) {
			candidatesSkipped.Inc()
			continue
		}

		drops := w.BreakBlock(pos)
		broken++
		blocksBroken.Inc()

		spawned := 0
		for _, drop := range drops {
			out := proc(toolStack, drop)
			dropsProcessed.Inc()
			if out == nil || out.IsEmpty() {
				dropsSuppressed.Inc()
				continue
			}
			w.SpawnDrop(pos, out)
			spawned++
		}

		if playEffects {
			w.PlayBreakEffects(pos, state)
		}

		event.Publish(event.NewEnvelope(event.TypeBlockBroken, event.BlockBrokenPayload{
			Pos:   pos,
			Block: state.ID,
			Drops: spawned,
		}))
	}

	logging.LogBreakSweep(center, len(positions), broken)

	event.Publish(event.NewEnvelope(event.TypeBreakSweep, event.BreakSweepPayload{
		Center: center,
		Radius: radius,
		Depth:  depth,
		Broken: broken,
	}))
}
