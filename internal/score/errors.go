package score

import "errors"

var (
	ErrAlreadyScored = errors.New("player_already_scored")
	ErrNegativeScore = errors.New("negative_score")
)
