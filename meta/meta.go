// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines running Monte Carlo trials.
const GO_ROUTINES = 1

// SIMULATIONS defines the number of Monte Carlo playouts per candidate move.
const SIMULATIONS = 2000

// DEPTH_LIMIT defines the minimax search depth in plies.
const DEPTH_LIMIT = 8

// GAMES defines the number of games per experiment matchup.
const GAMES = 20
