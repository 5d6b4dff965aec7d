package vec

// Axis представляет мировую ось координат
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Unit возвращает единичный вектор вдоль оси
func (a Axis) Unit() Vec3 {
	switch a {
	case AxisX:
		return Vec3{X: 1}
	case AxisY:
		return Vec3{Y: 1}
	default:
		return Vec3{Z: 1}
	}
}

// Cross возвращает две оси, перпендикулярные данной.
// Порядок фиксирован (X < Y < Z) — от него зависит порядок обхода кубоида.
func (a Axis) Cross() (Axis, Axis) {
	switch a {
	case AxisX:
		return AxisY, AxisZ
	case AxisY:
		return AxisX, AxisZ
	default:
		return AxisX, AxisY
	}
}

// Face представляет направление взгляда или грань блока
type Face uint8

const (
	FaceDown  Face = iota // -Y
	FaceUp                // +Y
	FaceNorth             // -Z
	FaceSouth             // +Z
	FaceWest              // -X
	FaceEast              // +X
)

// Axis возвращает ось, вдоль которой направлена грань
func (f Face) Axis() Axis {
	switch f {
	case FaceDown, FaceUp:
		return AxisY
	case FaceNorth, FaceSouth:
		return AxisZ
	default:
		return AxisX
	}
}

// Normal возвращает единичный вектор нормали грани
func (f Face) Normal() Vec3 {
	switch f {
	case FaceDown:
		return Vec3{Y: -1}
	case FaceUp:
		return Vec3{Y: 1}
	case FaceNorth:
		return Vec3{Z: -1}
	case FaceSouth:
		return Vec3{Z: 1}
	case FaceWest:
		return Vec3{X: -1}
	default:
		return Vec3{X: 1}
	}
}

// Opposite возвращает противоположную грань
func (f Face) Opposite() Face {
	switch f {
	case FaceDown:
		return FaceUp
	case FaceUp:
		return FaceDown
	case FaceNorth:
		return FaceSouth
	case FaceSouth:
		return FaceNorth
	case FaceWest:
		return FaceEast
	default:
		return FaceWest
	}
}

// String возвращает строковое представление грани
func (f Face) String() string {
	switch f {
	case FaceDown:
		return "down"
	case FaceUp:
		return "up"
	case FaceNorth:
		return "north"
	case FaceSouth:
		return "south"
	case FaceWest:
		return "west"
	case FaceEast:
		return "east"
	default:
		return "unknown"
	}
}
