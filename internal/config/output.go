package config

import (
	"fmt"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// MinLineLength is the narrowest PDN line width accepted.
const MinLineLength = 20

// OutputConfig controls how games and analysis are printed.
type OutputConfig struct {
	JSONFormat bool
	ShowBoard  bool // board diagrams beside text results

	MaxLineLength uint // PDN move text wraps at this column
	AddFEN        bool // a FEN comment after every move
}

func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowBoard:     true,
		MaxLineLength: 80,
	}
}

func (o *OutputConfig) Validate() error {
	if o.MaxLineLength < MinLineLength {
		return fmt.Errorf("line length %d below %d: %w", o.MaxLineLength, MinLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
