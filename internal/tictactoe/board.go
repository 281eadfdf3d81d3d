package tictactoe

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Symbol is the content of a single cell; the zero value is an empty cell.
type Symbol string

const (
	Empty   Symbol = ""
	PlayerX Symbol = "X"
	PlayerO Symbol = "O"
)

// Board is a square grid addressed as board[x][y].
type Board [][]Symbol

var jsonNull = []byte("null")

// Other returns the opposing mark. Empty stays empty.
func (that Symbol) Other() Symbol {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

func (that Symbol) MarshalJSON() ([]byte, error) {
	if that == Empty {
		return jsonNull, nil
	}

	return json.Marshal(string(that))
}

func (that *Symbol) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*that = Empty
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal symbol: %w", err)
	}

	switch symbol := Symbol(raw); symbol {
	case Empty, PlayerX, PlayerO:
		*that = symbol
		return nil
	default:
		return fmt.Errorf("unknown symbol %q", raw)
	}
}

// EmptyBoard - builds an n×n board with every cell empty.
func EmptyBoard(n int) Board {
	board := make(Board, n)
	for i := range board {
		board[i] = make([]Symbol, n)
	}

	return board
}

// IsFull - reports whether no empty cell is left.
func IsFull(board Board) bool {
	for _, row := range board {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

// WinLength - returns how many marks in a row are needed on an n×n board.
func WinLength(n int) int {
	switch {
	case n <= 4:
		return 3
	case n == 5:
		return 4
	default:
		return 5
	}
}

// direction is a step along one of the four scan orientations.
type direction struct {
	dx, dy int
}

var directions = [...]direction{
	{dx: 0, dy: 1},  // horizontal
	{dx: 1, dy: 0},  // vertical
	{dx: 1, dy: 1},  // diagonal down-right
	{dx: -1, dy: 1}, // diagonal up-right
}

// CheckWinner - reports whether symbol holds winLen consecutive cells in any row, column or diagonal.
// winLen larger than the board is clamped to the board size.
func CheckWinner(board Board, symbol Symbol, winLen int) bool {
	n := len(board)
	if n == 0 || symbol == Empty {
		return false
	}

	if winLen > n {
		winLen = n
	}

	if winLen < 1 {
		winLen = 1
	}

	for _, dir := range directions {
		if hasRun(board, symbol, winLen, dir) {
			return true
		}
	}

	return false
}

func hasRun(board Board, symbol Symbol, winLen int, dir direction) bool {
	n := len(board)

	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			endX := x + dir.dx*(winLen-1)
			endY := y + dir.dy*(winLen-1)
			if endX < 0 || endX >= n || endY < 0 || endY >= n {
				continue
			}

			run := 0
			for k := 0; k < winLen; k++ {
				if board[x+dir.dx*k][y+dir.dy*k] != symbol {
					break
				}
				run++
			}

			if run == winLen {
				return true
			}
		}
	}

	return false
}

// InBounds - reports whether (x, y) addresses a cell of an n×n board.
func InBounds(n, x, y int) bool {
	return x >= 0 && x < n && y >= 0 && y < n
}

// Clone - returns a deep copy so that later mutations do not leak into snapshots.
func (that Board) Clone() Board {
	if that == nil {
		return nil
	}

	clone := make(Board, len(that))
	for i, row := range that {
		clone[i] = append([]Symbol(nil), row...)
	}

	return clone
}
