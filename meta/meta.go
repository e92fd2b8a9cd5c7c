// meta/meta.go
package meta

// CHESS_HARD_DEPTH is the search depth of the hard chess agent: its own move
// plus the opponent's reply.
const CHESS_HARD_DEPTH = 2

// CHECKERS_HARD_DEPTH is the search depth of the hard checkers agent.
const CHECKERS_HARD_DEPTH = 5

// MAX_TURNS caps self-play games, which otherwise may shuffle forever.
const MAX_TURNS = 300

// GAMES defines the number of self-play games per run.
const GAMES = 10
