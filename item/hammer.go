package item

// Hammer — инструмент 3x3 для камня и руд
type Hammer struct {
	BaseTool
}

// NewHammer создает молот с радиусом 1 (область 3x3) и эффектами
func NewHammer() Hammer {
	return Hammer{BaseTool{BreakRadius: 1, Effects: true}}
}

// Excavator — инструмент 3x3 для земли, песка и гравия.
// От молота отличается только стеком, которым им копают:
// пригодность определяет стек в руке агента, не дескриптор.
type Excavator struct {
	BaseTool
}

// NewExcavator создает экскаватор с радиусом 1 (область 3x3) и эффектами
func NewExcavator() Excavator {
	return Excavator{BaseTool{BreakRadius: 1, Effects: true}}
}
