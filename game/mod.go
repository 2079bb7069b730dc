package game

// Size is the number of rows and columns of the board.
const Size = 8

// Inf bounds every heuristic score. Score returns it when the side treated as the
// bot's opponent has lost all of its material.
const Inf = 1e9

// Evaluate scores a board from the bot's perspective. firstBotColor selects the
// orientation in which the material of both sides is compared.
type Evaluate func(b Board, firstBotColor bool) float64
