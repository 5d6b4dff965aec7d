package block

var registry = make(map[BlockID]Behavior)

// Register добавляет поведение блока в регистр
func Register(id BlockID, behavior Behavior) {
	registry[id] = behavior
}

// Get возвращает поведение для указанного ID
func Get(id BlockID) (Behavior, bool) {
	behavior, exists := registry[id]
	return behavior, exists
}

// IsValidBlockID проверяет, является ли ID допустимым идентификатором блока
func IsValidBlockID(id BlockID) bool {
	_, exists := registry[id]
	return exists
}

// BlockID представляет идентификатор блока
type BlockID uint16

// Константы ID блоков
const (
	// Базовые типы блоков
	AirBlockID    BlockID = iota // 0
	DirtBlockID                  // 1
	GrassBlockID                 // 2
	StoneBlockID                 // 3
	SandBlockID                  // 4
	GravelBlockID                // 5

	// Для возможности расширения, оставляем большие промежутки между категориями

	// Рудные блоки (начиная с 100)
	IronOreBlockID BlockID = 100 // Железная руда

	// Специальные блоки (начиная с 1000)
	BedrockBlockID BlockID = 1000 // Неразрушаемое основание мира
)
