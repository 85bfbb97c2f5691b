// filters.go - Game selection for replay mode
package main

import (
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/game"
	"github.com/lgbarn/checkers-go/internal/matching"
	"github.com/lgbarn/checkers-go/internal/openings"
	"github.com/lgbarn/checkers-go/internal/parser"
	"github.com/lgbarn/checkers-go/internal/processing"
)

// selection decides which replayed games are written.
type selection struct {
	matcher    *matching.CompositeMatcher
	classifier *openings.Classifier
	commented  bool
	negate     bool
}

// newSelection builds the selection from the command-line flags, loading
// any criteria, sequence and opening book files they name.
func newSelection(cfg *config.Config) (*selection, error) {
	sel := &selection{
		matcher:   matching.NewCompositeMatcher(matching.MatchAll),
		commented: *commentedFilter,
		negate:    *negateMatch,
	}

	if *openingBook != "" {
		sel.classifier = openings.NewClassifier(cfg)
		if err := sel.classifier.LoadFromFile(*openingBook); err != nil {
			return nil, err
		}
		cfg.Logf(2, "%d opening line(s) loaded from %s\n", sel.classifier.EntriesLoaded(), *openingBook)
	}

	gf, err := buildGameFilter()
	if err != nil {
		return nil, err
	}
	if gf.HasCriteria() {
		sel.matcher.Add(gf)
	}

	if err := addSequenceMatchers(sel.matcher); err != nil {
		return nil, err
	}
	if err := addMaterialMatchers(sel.matcher); err != nil {
		return nil, err
	}

	if *pieceCount > 0 {
		sel.matcher.Add(matching.PieceCountMatcher(*pieceCount))
	}
	if *minPly > 0 || *maxPly > 0 {
		sel.matcher.Add(matching.PlyRange(*minPly, *maxPly))
	}
	if needsGameAnalysis() {
		sel.matcher.Add(matching.MatcherFunc{Label: "Features", Fn: matchFeatures})
	}
	return sel, nil
}

// buildGameFilter collects the tag and position criteria.
func buildGameFilter() (*matching.GameFilter, error) {
	gf := matching.NewGameFilter()
	gf.TagMatcher.SetSubstringMatch(*tagSubstring)

	if *tagFile != "" {
		if err := gf.LoadTagFile(*tagFile); err != nil {
			return nil, err
		}
	}
	if *whiteFilter != "" {
		gf.AddWhiteFilter(*whiteFilter)
	}
	if *blackFilter != "" {
		gf.AddBlackFilter(*blackFilter)
	}
	if *playerFilter != "" {
		gf.AddPlayerFilter(*playerFilter)
	}
	if *resultFilter != "" {
		gf.AddResultFilter(*resultFilter)
	}
	if *fenFilter != "" {
		if err := gf.AddFENFilter(*fenFilter); err != nil {
			return nil, err
		}
	}
	return gf, nil
}

// addSequenceMatchers adds the move and position sequence files.
func addSequenceMatchers(all *matching.CompositeMatcher) error {
	if *moveFile != "" {
		vm := matching.NewVariationMatcher(*anywhere)
		if err := vm.LoadFromFile(*moveFile); err != nil {
			return err
		}
		if vm.HasCriteria() {
			all.Add(vm)
		}
	}
	if *positionFile != "" {
		vm := matching.NewVariationMatcher(*anywhere)
		if err := vm.LoadPositionalFromFile(*positionFile); err != nil {
			return err
		}
		if vm.HasCriteria() {
			all.Add(vm)
		}
	}
	return nil
}

// addMaterialMatchers adds the -z and -y balances.
func addMaterialMatchers(all *matching.CompositeMatcher) error {
	for _, m := range []struct {
		pattern string
		exact   bool
	}{
		{*materialExact, true},
		{*materialAtLeast, false},
	} {
		if m.pattern == "" {
			continue
		}
		mm, err := matching.NewMaterialMatcher(m.pattern, m.exact)
		if err != nil {
			return err
		}
		all.Add(mm)
	}
	return nil
}

// needsGameAnalysis returns true if any feature filter needs a walk
// through the game.
func needsGameAnalysis() bool {
	return *repetitionFilter || *crowningFilter || *multiJumpFilter || *oddsFilter
}

// matchFeatures checks the feature filters against one analysis of g.
func matchFeatures(g *game.Game) bool {
	info := processing.AnalyzeGame(g)

	if *repetitionFilter && !info.HasRepetition {
		return false
	}
	if *crowningFilter && info.Crownings == 0 {
		return false
	}
	if *multiJumpFilter && !info.MultiJump() {
		return false
	}
	if *oddsFilter && !info.HasMaterialOdds {
		return false
	}
	return true
}

// active reports whether any criterion is set.
func (s *selection) active() bool {
	return s.matcher.Len() > 0 || s.commented
}

// annotate adds the opening tags of g when a book is loaded.
func (s *selection) annotate(g *game.Game) {
	if s.classifier != nil {
		s.classifier.AddTags(g)
	}
}

// keep reports whether g, replayed from pg, is selected. -n inverts the
// outcome once some criterion is set.
func (s *selection) keep(pg *parser.Game, g *game.Game) bool {
	if !s.active() {
		return true
	}
	matched := s.matcher.Match(g)
	if matched && s.commented {
		matched = processing.HasComments(pg)
	}
	if s.negate {
		return !matched
	}
	return matched
}
