package models

import "time"

// Prize is an award resolved by a draw. Order 1 is the major prize and is
// drawn first. Winner fields stay unset until the prize is resolved and never
// change afterwards.
type Prize struct {
	ID            string     `json:"id"`
	Description   string     `json:"description"`
	Order         int        `json:"order"`
	WinningNumber *int       `json:"winning_number,omitempty"`
	WinnerName    string     `json:"winner_name,omitempty"`
	WinnerPhone   string     `json:"winner_phone,omitempty"`
	DrawnAt       *time.Time `json:"drawn_at,omitempty"`
}

func (p *Prize) IsResolved() bool {
	return p.WinningNumber != nil
}

// Public returns a copy of the prize without the winner's phone.
func (p Prize) Public() Prize {
	p.WinnerPhone = ""
	return p
}

func (p *Prize) resolve(number int, winnerName, winnerPhone string, at time.Time) {
	n := number
	drawnAt := at
	p.WinningNumber = &n
	p.WinnerName = winnerName
	p.WinnerPhone = winnerPhone
	p.DrawnAt = &drawnAt
}
