package cubeviz

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Dir is one of the six outward-facing directions of a cubie.
type Dir int

const (
	DirRight Dir = iota // +x
	DirLeft             // -x
	DirUp               // +y
	DirDown             // -y
	DirFront            // +z
	DirBack             // -z
)

// Dirs lists all six directions in table order.
var Dirs = [6]Dir{DirRight, DirLeft, DirUp, DirDown, DirFront, DirBack}

var dirVecs = [6]Vec{
	DirRight: {1, 0, 0},
	DirLeft:  {-1, 0, 0},
	DirUp:    {0, 1, 0},
	DirDown:  {0, -1, 0},
	DirFront: {0, 0, 1},
	DirBack:  {0, 0, -1},
}

// Vec returns the unit vector of d.
func (d Dir) Vec() Vec {
	return dirVecs[d]
}

// DirOf returns the direction whose unit vector is v.
func DirOf(v Vec) (Dir, bool) {
	for _, d := range Dirs {
		if dirVecs[d] == v {
			return d, true
		}
	}
	return 0, false
}

// Rotate turns the direction a quarter turn about axis a.
func (d Dir) Rotate(a Axis, dir Direction) Dir {
	r, ok := DirOf(Rotate(d.Vec(), a, dir))
	if !ok {
		// Rotate maps unit axis vectors onto unit axis vectors.
		panic("cubeviz: rotated direction is not a unit axis vector")
	}
	return r
}

// Label returns the face label that is bound to d on a solved cube.
func (d Dir) Label() Label {
	return dirLabels[d]
}

func (d Dir) String() string {
	return d.Label().String()
}

// Label is the symbolic tag of a sticker. It travels with its cubie.
type Label byte

const (
	NoLabel Label = iota
	LabelU
	LabelD
	LabelF
	LabelB
	LabelL
	LabelR
)

// Labels lists the six sticker labels.
var Labels = [6]Label{LabelU, LabelD, LabelF, LabelB, LabelL, LabelR}

var dirLabels = [6]Label{
	DirRight: LabelR,
	DirLeft:  LabelL,
	DirUp:    LabelU,
	DirDown:  LabelD,
	DirFront: LabelF,
	DirBack:  LabelB,
}

// Color returns the display color bound to the label.
func (l Label) Color() Color {
	switch l {
	case LabelU:
		return White
	case LabelD:
		return Yellow
	case LabelF:
		return Green
	case LabelB:
		return Blue
	case LabelR:
		return Red
	case LabelL:
		return Orange
	default:
		return White
	}
}

func (l Label) String() string {
	switch l {
	case LabelU:
		return "U"
	case LabelD:
		return "D"
	case LabelF:
		return "F"
	case LabelB:
		return "B"
	case LabelL:
		return "L"
	case LabelR:
		return "R"
	default:
		return "-"
	}
}
