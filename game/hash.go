package game

import "lukechampine.com/frand"

const bignum = 1<<63 - 2

type StateHash uint64

// One Zobrist key per cell; the occupant is folded in with hashUint64 so any
// Player value hashes without a per-player table.
var cellKeys = func() (keys [Rows * Columns]uint64) {
	for i := range keys {
		keys[i] = frand.Uint64n(bignum) + 1
	}
	return keys
}()

// https://stackoverflow.com/a/12996028/1737333
func hashUint64(x uint64) uint64 {
	x = (x ^ (x >> 30)) * uint64(0xbf58476d1ce4e5b9)
	x = (x ^ (x >> 27)) * uint64(0x94d049bb133111eb)
	x = x ^ (x >> 31)
	return x
}

// Hash is a Zobrist hash of the occupied cells. Keys are drawn once per
// process, so hashes are only comparable within a run.
func (gs *GameState) Hash() StateHash {
	var h uint64
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			p := gs.grid[row][col]
			if p == Nobody {
				continue
			}
			key := cellKeys[row*Columns+col]
			h ^= hashUint64(key + uint64(p))
		}
	}
	return StateHash(h)
}
