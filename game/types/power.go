package types

// PowerKind identifies a power-up and the effect it triggers.
type PowerKind int

const (
	PowerNone PowerKind = iota
	PowerGrowth
	PowerSpeed
	PowerShrink
	PowerScoreBoost
)

// PowerKinds lists the kinds that can spawn on the board.
var PowerKinds = [4]PowerKind{PowerGrowth, PowerSpeed, PowerShrink, PowerScoreBoost}

func (k PowerKind) String() string {
	switch k {
	case PowerGrowth:
		return "growth"
	case PowerSpeed:
		return "speed"
	case PowerShrink:
		return "shrink"
	case PowerScoreBoost:
		return "scoreBoost"
	default:
		return "None"
	}
}

// PowerUp is an uncollected power-up lying on the board.
type PowerUp struct {
	Pos  Point
	Kind PowerKind
	TTL  int // Moves left before it disappears
}

// Effect is the single active power effect slot.
type Effect struct {
	Kind      PowerKind
	Remaining int
}
