package board

// Size is the edge length of the letter grid.
const Size = 4

// Board is a letter grid together with every dictionary word that can be
// traced on it. Grid is row-major, one upper-case letter per cell.
type Board struct {
	Grid  []string `json:"board"`
	Words []string `json:"words"`
}
