package seat

// Position は公演内の座席位置（列・番号）を表す
type Position struct {
	Row    int
	Number int
}

// NewPosition は新しい座席位置を作成する
func NewPosition(row, number int) Position {
	return Position{Row: row, Number: number}
}

// Validate は座席位置の検証を行う
func (p Position) Validate() error {
	if p.Row < 1 || p.Number < 1 {
		return ErrInvalidSeatNumber
	}
	return nil
}
