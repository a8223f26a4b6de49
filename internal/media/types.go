package media

type Type string

const (
	// TypeIcon is a menu row icon.
	TypeIcon Type = "icon"
	// TypeSplash is shown on the display while booting.
	TypeSplash Type = "splash"
)

func (t Type) Size() (w int16, h int16) {
	switch t {
	case TypeIcon:
		return 8, 8
	case TypeSplash:
		return 64, 32
	default:
		return 0, 0
	}
}
