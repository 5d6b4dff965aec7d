package block

// UnbreakableHardness — сентинельное значение прочности: блок с такой
// прочностью не может быть разрушен никаким инструментом.
const UnbreakableHardness = -1.0

// Material определяет материал блока. Пригодность инструмента
// проверяется сопоставлением материала и вида инструмента.
type Material uint8

const (
	MaterialNone  Material = iota // Воздух и прочие нематериальные блоки
	MaterialEarth                 // Земля, песок, гравий — копаются лопатой
	MaterialRock                  // Камень, руды — добываются киркой
	MaterialWood                  // Древесина — рубится топором
)

// Drop описывает предмет, выпадающий при разрушении блока
type Drop struct {
	Item  string // Идентификатор предмета
	Count int    // Количество
}

// Behavior определяет статические свойства типа блока
type Behavior interface {
	ID() BlockID
	Name() string
	// Hardness возвращает прочность блока; UnbreakableHardness означает,
	// что блок не разрушается вообще.
	Hardness() float64
	// RequiresTool сообщает, обязателен ли подходящий инструмент
	// для разрушения блока.
	RequiresTool() bool
	Material() Material
	// Drops возвращает дропы при разрушении блока
	Drops() []Drop
}
