package checkers

import (
	"fmt"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// sampleDiagrams are diagnostic positions exercising captures, chains and queens.
var sampleDiagrams = []string{
	// 1: white double jump from (1,6) over (2,5) and (4,3)
	`0 1 0 1 0 1 0 1
	 1 0 1 0 1 0 1 0
	 0 1 0 1 0 1 0 1
	 1 0 1 0 b 0 b 0
	 0 1 0 1 0 1 0 1
	 1 0 b 0 1 0 1 0
	 0 w 0 1 0 1 0 1
	 1 0 1 0 1 0 1 0`,
	// 2: captures for both sides, white man on (2,1) next to promotion
	`0 b 0 1 0 1 0 1
	 1 0 w 0 1 0 1 0
	 0 1 0 1 0 1 0 1
	 1 0 1 0 1 0 1 0
	 0 1 0 b 0 b 0 1
	 1 0 1 0 w 0 w 0
	 0 1 0 1 0 1 0 1
	 1 0 1 0 1 0 1 0`,
	// 3: lone white man, black has no moves
	`0 1 0 1 0 1 0 1
	 1 0 1 0 1 0 1 0
	 0 1 0 1 0 1 0 1
	 1 0 1 0 1 0 1 0
	 0 1 0 w 0 1 0 1
	 1 0 1 0 1 0 1 0
	 0 1 0 1 0 1 0 1
	 1 0 1 0 1 0 1 0`,
	// 4: white men blocked on the far rows, white has no moves
	`0 b 0 b 0 b 0 1
	 w 0 1 0 1 0 b 0
	 0 1 0 1 0 1 0 w
	 1 0 1 0 1 0 1 0
	 0 1 0 1 0 1 0 1
	 1 0 1 0 1 0 1 0
	 0 1 0 1 0 1 0 1
	 1 0 1 0 1 0 1 0`,
	// 5: two queens face to face
	`0 1 0 1 0 1 0 1
	 wq 0 1 0 1 0 1 0
	 0 bq 0 1 0 1 0 1
	 1 0 1 0 1 0 1 0
	 0 1 0 1 0 1 0 1
	 1 0 1 0 1 0 1 0
	 0 1 0 1 0 1 0 1
	 1 0 1 0 1 0 1 0`,
	// 6: sample 2 with an extra white man
	`0 b 0 1 0 1 0 1
	 1 0 w 0 1 0 1 0
	 0 1 0 1 0 1 0 1
	 1 0 1 0 1 0 1 0
	 0 1 0 b 0 b 0 1
	 1 0 1 0 w 0 w 0
	 0 w 0 1 0 1 0 1
	 1 0 1 0 1 0 1 0`,
}

// NumSamples is the number of boards SampleBoard serves.
var NumSamples = len(sampleDiagrams)

// SampleBoard returns diagnostic position n, counted from 1.
func SampleBoard(n int) (Board, error) {
	if n < 1 || n > len(sampleDiagrams) {
		return Board{}, fmt.Errorf("sample %d: %w", n, errors.ErrUnknownSample)
	}
	return ParseDiagram(fmt.Sprintf("sample %d", n), sampleDiagrams[n-1])
}
