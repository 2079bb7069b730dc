// meta/meta.go
package meta

// MAX_TURNS is the number of turns after which a game is drawn.
const MAX_TURNS = 120

// BOT_LEVEL is the default search depth of both bots.
const BOT_LEVEL = 5

// BOT_DELAY_MS is the default pause between the steps of a bot's capture chain.
const BOT_DELAY_MS = 0

// SCORING is the default heuristic.
const SCORING = "NumberAndPotential"

// OPTIMIZATION is the default search optimization; "O0" disables alpha-beta pruning.
const OPTIMIZATION = "O1"

// CONFIG_FILE is searched for relative to the XDG config directories.
const CONFIG_FILE = "checkers/settings.json"
