package magna

import (
	"github.com/annel0/magna-tools/config"
	"github.com/annel0/magna-tools/logging"
	"github.com/annel0/magna-tools/magna/radius"
	"github.com/annel0/magna-tools/vec"
	"github.com/annel0/magna-tools/world"
)

// AttemptBreak — единая точка входа радиусного разрушения. Хост
// вызывает ее из обработчика разрушения блока, пока целевой блок еще
// существует: проверка пригодности цели выполняется по его состоянию.
// Одиночный блок под курсором хост ломает своим обычным путем уже
// после прохода (сам проход центр пропускает).
//
// Последовательность:
//  1. гейт по конфигурации и приседанию — возврат false без каких-либо
//     обращений к миру;
//  2. проверка пригодности целевого блока — непригодная цель не
//     расширяется, возврат false (стратегия поиска не вызывается);
//  3. разрешение эффективного радиуса через цепочку слушателей
//     и глубины через способность инструмента;
//  4. проход разрушения по объему со стратегией, предикатом
//     пригодности и процессором данного инструмента.
//
// Между вызовами не сохраняется никакого состояния: результат —
// чистая функция текущего мира, конфигурации и цепочки слушателей.
// При proc == nil используется процессор самого инструмента.
func AttemptBreak(cfg *config.Config, w world.World, pos vec.Vec3, agent world.Agent,
	tool Tool, breakRadius int, proc Processor) bool {

	stack := agent.MainHandStack()

	if IgnoreRadiusBreak(cfg, stack, agent) {
		breakAttempts.WithLabelValues(resultSneakGated).Inc()
		return false
	}

	// Расширяемся только если инструмент эффективен против целевого
	// блока: разрушение гравия не должно ломать соседний камень.
	if !IsBlockValidForBreaking(w, pos, stack) {
		breakAttempts.WithLabelValues(resultOriginIneligible).Inc()
		return false
	}

	effRadius := radius.Resolve(stack, breakRadius)
	if effRadius < 0 {
		effRadius = 0
	}
	if ceiling := cfg.Break.GetMaxRadius(); effRadius > ceiling {
		logging.LogWarn("Эффективный радиус %d превысил потолок %d и был ограничен", effRadius, ceiling)
		effRadius = ceiling
	}

	depth := DepthOf(tool, stack)
	if depth < 0 {
		depth = 0
	}

	center := CenterOf(tool, w, agent, pos, stack)
	if proc == nil {
		proc = ProcessorOf(tool, w, agent, pos, stack)
	}

	logging.LogBreakAttempt(center, effRadius, depth)

	BreakInRadius(w, agent, center, effRadius, depth,
		FinderOf(tool),
		func(view world.BlockView, breakPos vec.Vec3) bool {
			return IsBlockValidForBreaking(view, breakPos, stack)
		},
		proc, tool.PlayBreakEffects())

	breakAttempts.WithLabelValues(resultOK).Inc()
	return true
}

// IgnoreRadiusBreak возвращает true, если радиусное разрушение сейчас
// запрещено конфигурацией и состоянием агента (приседание). Хост при
// этом все равно ломает одиночный блок своим обычным путем.
func IgnoreRadiusBreak(cfg *config.Config, stack world.Stack, agent world.Agent) bool {
	return cfg.Break.BreakSingleBlockWhenSneaking && agent.IsSneaking()
}

// ShowExtendedOutline возвращает true, если клиенту следует рисовать
// расширенный контур области поверх блока под курсором.
func ShowExtendedOutline(cfg *config.Config, stack world.Stack, agent world.Agent) bool {
	return !cfg.Break.DisableExtendedHitboxWhileSneaking || !agent.IsSneaking()
}
