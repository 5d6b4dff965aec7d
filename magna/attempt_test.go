package magna

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/annel0/magna-tools/config"
	"github.com/annel0/magna-tools/magna/radius"
	"github.com/annel0/magna-tools/vec"
	"github.com/annel0/magna-tools/world"
	"github.com/annel0/magna-tools/world/block"
)

func TestAttemptBreakSneakGate(t *testing.T) {
	cfg := config.Default() // break_single_block_when_sneaking = true
	w := world.NewMemoryWorld()
	pos := vec.Vec3{X: 0, Y: 5, Z: 0}
	fillPlane(w, pos, 1, block.DirtBlockID)

	finder := &recordingFinder{}
	tool := finderTool{radius: 1, finder: finder}
	agent := stubAgent{sneaking: true, stack: stubStack{suitable: true}, facing: vec.FaceDown}

	if AttemptBreak(cfg, w, pos, agent, tool, tool.radius, nil) {
		t.Error("Крадущийся агент должен блокировать радиусное разрушение")
	}

	if finder.calls != 0 {
		t.Errorf("Гейт по приседанию сработал, но стратегия поиска вызвана %d раз", finder.calls)
	}

	if w.BlockCount() != 9 {
		t.Error("Гейт по приседанию не должен трогать мир")
	}
}

func TestAttemptBreakSneakAllowedByConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Break.BreakSingleBlockWhenSneaking = false

	w := world.NewMemoryWorld()
	pos := vec.Vec3{X: 0, Y: 5, Z: 0}
	fillPlane(w, pos, 1, block.DirtBlockID)

	tool := plainTool{radius: 1}
	agent := stubAgent{sneaking: true, stack: stubStack{suitable: true}, facing: vec.FaceDown}

	if !AttemptBreak(cfg, w, pos, agent, tool, tool.radius, nil) {
		t.Error("При отключенном гейте приседание не должно мешать разрушению")
	}
}

func TestAttemptBreakIneligibleOrigin(t *testing.T) {
	cfg := config.Default()
	w := world.NewMemoryWorld()

	// Цель — камень, стек не подходит: гравий не должен ломать камень
	pos := vec.Vec3{X: 0, Y: 5, Z: 0}
	w.SetBlock(pos, block.StoneBlockID)
	fillPlane(w, vec.Vec3{X: 0, Y: 4, Z: 0}, 1, block.DirtBlockID)

	finder := &recordingFinder{}
	tool := finderTool{radius: 1, finder: finder}
	agent := stubAgent{stack: stubStack{suitable: false, speed: 2.0}, facing: vec.FaceDown}

	if AttemptBreak(cfg, w, pos, agent, tool, tool.radius, nil) {
		t.Error("Непригодная цель не должна запускать радиусное разрушение")
	}

	if finder.calls != 0 {
		t.Errorf("Непригодная цель, но стратегия поиска вызвана %d раз", finder.calls)
	}
}

func TestAttemptBreakAirOrigin(t *testing.T) {
	cfg := config.Default()
	w := world.NewMemoryWorld()

	// Цель уже разрушена хостом: вокруг воздуха расширяться нельзя
	pos := vec.Vec3{X: 0, Y: 5, Z: 0}
	fillPlane(w, pos, 1, block.DirtBlockID)
	w.BreakBlock(pos)

	tool := plainTool{radius: 1}
	agent := stubAgent{stack: stubStack{suitable: true}, facing: vec.FaceDown}

	if AttemptBreak(cfg, w, pos, agent, tool, tool.radius, nil) {
		t.Error("Пустая цель не должна запускать радиусное разрушение")
	}

	if w.BlockCount() != 8 {
		t.Errorf("Соседи пустой цели должны остаться нетронутыми, осталось %d блоков", w.BlockCount())
	}
}

func TestAttemptBreakSweep(t *testing.T) {
	cfg := config.Default()
	w := world.NewMemoryWorld()
	pos := vec.Vec3{X: 10, Y: 10, Z: 10}
	fillPlane(w, pos, 1, block.DirtBlockID)

	tool := plainTool{radius: 1, effects: true}
	agent := stubAgent{stack: stubStack{suitable: true}, facing: vec.FaceDown}

	if !AttemptBreak(cfg, w, pos, agent, tool, tool.radius, nil) {
		t.Fatal("Ожидалось успешное радиусное разрушение")
	}

	// Центр остается хосту, 8 соседей разрушены проходом
	if w.GetBlockState(pos).ID != block.DirtBlockID {
		t.Error("Центральный блок должен остаться обычному пути хоста")
	}

	if len(w.Drops()) != 8 {
		t.Errorf("Ожидалось 8 дропов, получено %d", len(w.Drops()))
	}

	if len(w.Effects()) != 8 {
		t.Errorf("Ожидалось 8 эффектов, получено %d", len(w.Effects()))
	}
}

func TestAttemptBreakRadiusChain(t *testing.T) {
	defer radius.Reset()

	// Два слушателя, каждый добавляет 1: базовый радиус 2 дает эффективный 4
	radius.Register(func(stack world.Stack, current int) int { return current + 1 })
	radius.Register(func(stack world.Stack, current int) int { return current + 1 })

	cfg := config.Default()
	w := world.NewMemoryWorld()
	pos := vec.Vec3{X: 20, Y: 10, Z: 20}
	fillPlane(w, pos, 5, block.DirtBlockID)

	tool := plainTool{radius: 2}
	agent := stubAgent{stack: stubStack{suitable: true}, facing: vec.FaceDown}

	if !AttemptBreak(cfg, w, pos, agent, tool, tool.radius, nil) {
		t.Fatal("Ожидалось успешное радиусное разрушение")
	}

	// Эффективный радиус 4: область 9x9 минус центр
	if len(w.Drops()) != 9*9-1 {
		t.Errorf("Ожидалось %d дропов при эффективном радиусе 4, получено %d",
			9*9-1, len(w.Drops()))
	}
}

func TestAttemptBreakMaxRadiusClamp(t *testing.T) {
	defer radius.Reset()

	radius.Register(func(stack world.Stack, current int) int { return current + 100 })

	cfg := config.Default()
	cfg.Break.MaxRadius = 2

	w := world.NewMemoryWorld()
	pos := vec.Vec3{X: 0, Y: 10, Z: 0}
	fillPlane(w, pos, 6, block.DirtBlockID)

	tool := plainTool{radius: 1}
	agent := stubAgent{stack: stubStack{suitable: true}, facing: vec.FaceDown}

	if !AttemptBreak(cfg, w, pos, agent, tool, tool.radius, nil) {
		t.Fatal("Ожидалось успешное радиусное разрушение")
	}

	// Потолок 2: область 5x5 минус центр
	if len(w.Drops()) != 5*5-1 {
		t.Errorf("Ожидалось %d дропов при потолке радиуса 2, получено %d",
			5*5-1, len(w.Drops()))
	}
}

func TestAttemptBreakCustomProcessor(t *testing.T) {
	cfg := config.Default()
	w := world.NewMemoryWorld()
	pos := vec.Vec3{X: 0, Y: 10, Z: 0}
	fillPlane(w, pos, 1, block.StoneBlockID)

	proc := SmeltingProcessor(map[string]string{"cobblestone": "stone"})
	tool := plainTool{radius: 1}
	agent := stubAgent{stack: stubStack{suitable: true}, facing: vec.FaceDown}

	if !AttemptBreak(cfg, w, pos, agent, tool, tool.radius, proc) {
		t.Fatal("Ожидалось успешное радиусное разрушение")
	}

	for _, drop := range w.Drops() {
		item, ok := drop.(world.ItemStack)
		if !ok {
			t.Fatalf("Ожидался world.ItemStack, получен %T", drop)
		}
		if item.Item != "stone" {
			t.Errorf("Автопереплавка должна подменять булыжник, получен %s", item.Item)
		}
	}
}

func TestAttemptBreakConfigReloadBetweenAttempts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "magna.yml")
	if err := os.WriteFile(path, []byte("break:\n  break_single_block_when_sneaking: false\n"), 0644); err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	m, err := config.NewManager(path)
	if err != nil {
		t.Fatalf("Ошибка создания менеджера: %v", err)
	}

	w := world.NewMemoryWorld()
	first := vec.Vec3{X: 0, Y: 5, Z: 0}
	second := vec.Vec3{X: 20, Y: 5, Z: 20}
	fillPlane(w, first, 1, block.DirtBlockID)
	fillPlane(w, second, 1, block.DirtBlockID)

	tool := plainTool{radius: 1}
	agent := stubAgent{sneaking: true, stack: stubStack{suitable: true}, facing: vec.FaceDown}

	// Гейт отключен: приседание не мешает первой попытке
	if !AttemptBreak(m.Current(), w, first, agent, tool, tool.radius, nil) {
		t.Fatal("Первая попытка должна пройти при отключенном гейте")
	}

	// Горячая перезагрузка между попытками включает гейт
	if err := os.WriteFile(path, []byte("break:\n  break_single_block_when_sneaking: true\n"), 0644); err != nil {
		t.Fatalf("Ошибка перезаписи файла конфигурации: %v", err)
	}
	if err := m.Reload(); err != nil {
		t.Fatalf("Ошибка перезагрузки: %v", err)
	}

	if AttemptBreak(m.Current(), w, second, agent, tool, tool.radius, nil) {
		t.Error("Вторая попытка должна блокироваться перезагруженным гейтом")
	}

	// Вторая область не тронута
	if w.GetBlockState(vec.Vec3{X: 21, Y: 5, Z: 20}).ID != block.DirtBlockID {
		t.Error("Заблокированная попытка не должна трогать мир")
	}
}

func TestShowExtendedOutline(t *testing.T) {
	cfg := config.Default() // disable_extended_hitbox_while_sneaking = true
	stack := stubStack{}

	if ShowExtendedOutline(cfg, stack, stubAgent{sneaking: true}) {
		t.Error("Крадущийся агент не должен видеть расширенный контур")
	}

	if !ShowExtendedOutline(cfg, stack, stubAgent{sneaking: false}) {
		t.Error("Обычный агент должен видеть расширенный контур")
	}

	cfg.Break.DisableExtendedHitboxWhileSneaking = false
	if !ShowExtendedOutline(cfg, stack, stubAgent{sneaking: true}) {
		t.Error("При отключенной опции контур виден и крадущемуся агенту")
	}
}

func TestRenderOutlineDefault(t *testing.T) {
	w := world.NewMemoryWorld()
	tool := plainTool{radius: 1}
	agent := stubAgent{stack: stubStack{}}

	if !RenderOutlineOf(tool, w, vec.Vec3{}, agent, agent.MainHandStack()) {
		t.Error("Без способности OutlineProvider контур рисуется по умолчанию")
	}
}
