package session

// Kind tags a session with the game being played. Per-game behavior lives
// in the Rules table, so a second game is a data change.
type Kind string

const KindWordHunt Kind = "word-hunt"

// Rules holds the per-kind constants consulted at every branch point.
type Rules struct {
	// NeedsBoard makes session creation pull a board from the supplier.
	NeedsBoard bool
	// PlayerMax caps how many players a session admits.
	PlayerMax int
	// TurnMax is the number of submitted results that finishes a session.
	TurnMax int
	// RecordsWords attaches the submitted word list to the player record.
	RecordsWords bool
	// GameURL is the browser client players are redirected to.
	GameURL string
}

// DefaultRules builds the rules table for the games this server hosts.
func DefaultRules(wordHuntURL string) map[Kind]Rules {
	return map[Kind]Rules{
		KindWordHunt: {
			NeedsBoard:   true,
			PlayerMax:    2,
			TurnMax:      2,
			RecordsWords: true,
			GameURL:      wordHuntURL,
		},
	}
}
