package operation

type Type string

const (
	TypeVisit       Type = "VISIT"
	TypeReservation Type = "RESERVATION"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeVisit, TypeReservation:
		return true
	default:
		return false
	}
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}
