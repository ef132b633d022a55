// Package engine implements the core search: iterative-deepening principal
// variation search with a quiescence extension, repetition cutoff, a
// transposition table, and top-level move scoring.
package engine

import "sort"

// Inf bounds the score range; mate scores are reported as ±(Inf-ply) so
// that shallower mates score strictly better than deeper ones.
const Inf int16 = 30000

// Logger receives search progress notifications. Production code wires a
// zap-backed implementation (see logging.go); tests and benchmarks use
// NulLogger.
type Logger interface {
	BeginSearch()
	EndSearch()
	CurrentDepth(depth int, bestScore int16, bestMove Move, nodes uint64)
}

// NulLogger discards every notification.
type NulLogger struct{}

func (NulLogger) BeginSearch()                                          {}
func (NulLogger) EndSearch()                                            {}
func (NulLogger) CurrentDepth(depth int, score int16, move Move, n uint64) {}

// Stats tracks search-progress counters surfaced to callers (§6 accessors).
type Stats struct {
	Nodes uint64 // n_searched, a proxy for work: legal moves searched by pvs plus quiescence calls (moves generated but not searched are not counted)
	Depth int
}

// Engine drives PVS search over a single Board and TranspositionTable.
// Both are owned exclusively by the engine for the duration of a search
// (§5 concurrency model: single-threaded, synchronous).
type Engine struct {
	Board *Board
	TT    *TranspositionTable
	Log   Logger
	Stats Stats
}

// NewEngine builds an Engine over board and tt. log may be nil, in which
// case NulLogger is used.
func NewEngine(board *Board, tt *TranspositionTable, log Logger) *Engine {
	if log == nil {
		log = NulLogger{}
	}
	return &Engine{Board: board, TT: tt, Log: log}
}

// ScoredMove pairs a root move with its search score.
type ScoredMove struct {
	Move  Move
	Score int16
}

// isQuiescent reports whether the position reached by last is quiescent:
// false only when last placed a pawn one rank from promotion.
func (e *Engine) isQuiescent(last Move) bool {
	if last == NullMove {
		return true
	}
	pi := e.Board.Get(last.To())
	if pi.Figure() != Pawn {
		return true
	}
	r := last.To().Rank()
	if pi.Color() == White && r == 6 {
		return false
	}
	if pi.Color() == Black && r == 1 {
		return false
	}
	return true
}

// orderMoves sorts moves by static delta (descending for White to move,
// ascending for Black) and moves ttMove to the front if present.
func orderMoves(moves []Move, white bool, ttMove Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		if white {
			return moves[i].Val > moves[j].Val
		}
		return moves[i].Val < moves[j].Val
	})
	if ttMove == NullMove {
		return
	}
	for i, m := range moves {
		if m.Frm() == ttMove.Frm() && m.To() == ttMove.To() && m.Transform() == ttMove.Transform() {
			moves[0], moves[i] = moves[i], moves[0]
			return
		}
	}
}

func max16(a, b int16) int16 {
	if a > b {
		return a
	}
	return b
}

// quiesce implements §4.7's quiescence search, fail-hard on beta.
func (e *Engine) quiesce(alpha, beta int16, last Move, forced bool) int16 {
	e.Stats.Nodes++
	standPat := e.Board.Eval()
	best := standPat
	if best >= beta {
		return beta
	}
	if best > alpha {
		alpha = best
	}

	all := e.Board.PseudoLegalMoves()
	var candidates []Move
	if forced {
		for _, m := range all {
			if m.To() == last.To() {
				candidates = append(candidates, m)
			}
		}
	} else {
		for _, m := range all {
			if m.IsEnPassant() || e.Board.Get(m.To()) != NoPiece {
				candidates = append(candidates, m)
			}
		}
	}

	us := e.Board.Turn()
	for _, m := range candidates {
		e.Board.Update(m)
		if e.Board.InCheck(us) {
			e.Board.Backdate(m)
			continue
		}
		score := -e.quiesce(-beta, -alpha, m, true)
		e.Board.Backdate(m)
		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			return beta
		}
	}
	return best
}

// pvs is the PVS recursion from §4.7, scored from the side-to-move's
// perspective.
func (e *Engine) pvs(depth, ply int, alpha, beta int16, last Move) int16 {
	// Repetition draw. A position with no legal move skips it and is scored
	// as mate or stalemate below.
	if e.Board.RepCount() >= 2 && len(e.Board.LegalMoves()) != 0 {
		return 0
	}

	us := e.Board.Turn()
	inCheck := e.Board.InCheck(us)
	if inCheck {
		depth++
	}

	hash := e.Board.Hash()
	alpha0, beta0 := alpha, beta
	score, cutoff, a, b, ttMove := e.TT.probe(hash, depth, alpha, beta)
	if cutoff {
		return score
	}
	alpha, beta = a, b

	if depth == 0 {
		if e.isQuiescent(last) {
			return e.quiesce(alpha, beta, last, false)
		}
		depth = 1
	}

	moves := e.Board.PseudoLegalMoves()
	orderMoves(moves, us == White, ttMove)

	bscore := -Inf + int16(ply)
	bmove := NullMove
	legalCount := 0

	for _, m := range moves {
		e.Board.Update(m)
		if e.Board.InCheck(us) {
			e.Board.Backdate(m)
			continue
		}
		legalCount++
		e.Stats.Nodes++

		var score int16
		if legalCount == 1 {
			score = -e.pvs(depth-1, ply+1, -beta, -alpha, m)
		} else {
			floor := max16(bscore, alpha)
			score = -e.pvs(depth-1, ply+1, -(alpha + 1), -floor, m)
			if score > floor && score < beta && depth > 2 {
				score = -e.pvs(depth-1, ply+1, -beta, -score, m)
			}
		}
		e.Board.Backdate(m)

		if score > bscore {
			bscore = score
			bmove = m
		}
		if bscore > alpha {
			alpha = bscore
		}
		if bscore >= beta {
			e.TT.store(hash, depth, bscore, alpha0, beta0, bmove)
			return bscore
		}
	}

	if legalCount == 0 {
		if !inCheck {
			return 0 // stalemate
		}
		return bscore // checkmate: -Inf+ply, never overwritten above
	}

	e.TT.store(hash, depth, bscore, alpha0, beta0, bmove)
	return bscore
}

// ScoreMoves is the iterative-deepening root driver (score_moves). It
// returns rootMoves ranked by descending score, searched to maxDepth or
// until Stats.Nodes exceeds nodeBudget at the end of a depth (depth 2 always
// completes). Returns an empty slice if rootMoves is empty.
func (e *Engine) ScoreMoves(rootMoves []Move, nodeBudget uint64, maxDepth int, verbose bool) []ScoredMove {
	if len(rootMoves) == 0 {
		return nil
	}

	e.Log.BeginSearch()
	defer e.Log.EndSearch()

	order := make([]Move, len(rootMoves))
	copy(order, rootMoves)
	scored := make([]ScoredMove, len(order))
	for i, m := range order {
		scored[i] = ScoredMove{Move: m, Score: 0}
	}

	for depth := 2; depth <= maxDepth; depth++ {
		for i, m := range order {
			e.Board.Update(m)
			var score int16
			if i == 0 {
				score = -e.pvs(depth-1, 1, -Inf, Inf, m)
			} else {
				score = -e.pvs(depth-1, 1, -(scored[0].Score + 1), -scored[0].Score, m)
				if score > scored[0].Score && depth > 2 {
					score = -e.pvs(depth-1, 1, -Inf, -score, m)
				}
			}
			e.Board.Backdate(m)
			scored[i] = ScoredMove{Move: m, Score: score}
		}

		sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
		for i, sm := range scored {
			order[i] = sm.Move
		}

		e.Stats.Depth = depth
		e.Log.CurrentDepth(depth, scored[0].Score, scored[0].Move, e.Stats.Nodes)

		if e.Stats.Nodes > nodeBudget && depth >= 2 {
			break
		}
		if abs16(scored[0].Score) >= Inf-int16(depth) {
			break
		}
	}

	return scored
}

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}
