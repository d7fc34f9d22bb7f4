package league

// Position is a player's field position, labeled in Portuguese as displayed
// throughout the app.
type Position string

const (
	PositionGoalkeeper Position = "Guarda-Redes"
	PositionDefender   Position = "Defesa"
	PositionMidfielder Position = "Médio"
	PositionForward    Position = "Avançado"
)

// Positions lists every position in display order.
func Positions() []Position {
	return []Position{PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward}
}

// CoercePosition maps a raw field value onto a Position. This is a closed-set
// membership check: any unrecognized string becomes Médio, it is never
// rejected.
func CoercePosition(raw any) Position {
	return coerce(raw, Positions(), PositionMidfielder)
}
