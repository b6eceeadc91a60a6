package engine

import "github.com/lgbarn/variantkit-go/internal/chess"

// offset is a file/rank displacement. Rank offsets of colour-relative
// pieces are given from White's point of view.
type offset struct {
	df, dr int
}

var (
	orthogonal  = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonal    = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	kingSteps   = append(append([]offset{}, orthogonal...), diagonal...)
	knightJumps = []offset{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	alfilJumps  = []offset{{2, 2}, {2, -2}, {-2, 2}, {-2, -2}}
	silverSteps = []offset{{-1, 1}, {0, 1}, {1, 1}, {-1, -1}, {1, -1}}
	goldSteps   = []offset{{-1, 1}, {0, 1}, {1, 1}, {-1, 0}, {1, 0}, {0, -1}}
	forwardStep = []offset{{0, 1}}
	shogiKnight = []offset{{-1, 2}, {1, 2}}
	sideSteps   = []offset{{-1, 0}, {1, 0}}
)

var janggiElephantJumps = []offset{
	{2, 3}, {3, 2}, {3, -2}, {2, -3}, {-2, -3}, {-3, -2}, {-3, 2}, {-2, 3},
}

// movement describes a piece as a set of steps and slides. Hopping and lame
// pieces are handled separately in attacksFrom.
type movement struct {
	steps  []offset
	slides []offset
}

var movements = map[chess.PieceType]movement{
	chess.Knight:      {steps: knightJumps},
	chess.Bishop:      {slides: diagonal},
	chess.Rook:        {slides: orthogonal},
	chess.Queen:       {slides: kingSteps},
	chess.Fers:        {steps: diagonal},
	chess.Alfil:       {steps: alfilJumps},
	chess.FersAlfil:   {steps: append(append([]offset{}, diagonal...), alfilJumps...)},
	chess.Silver:      {steps: silverSteps},
	chess.Archbishop:  {steps: knightJumps, slides: diagonal},
	chess.Chancellor:  {steps: knightJumps, slides: orthogonal},
	chess.ShogiPawn:   {steps: forwardStep},
	chess.Lance:       {slides: forwardStep},
	chess.ShogiKnight: {steps: shogiKnight},
	chess.Gold:        {steps: goldSteps},
	chess.DragonHorse: {steps: orthogonal, slides: diagonal},
	chess.Dragon:      {steps: diagonal, slides: orthogonal},
	chess.Wazir:       {steps: orthogonal},
	chess.Commoner:    {steps: kingSteps},
	chess.Centaur:     {steps: append(append([]offset{}, kingSteps...), knightJumps...)},
	chess.King:        {steps: kingSteps},
}

// relative flips the rank component for Black.
func relative(c chess.Colour, o offset) offset {
	if c == chess.Black {
		return offset{o.df, -o.dr}
	}
	return o
}

// shift returns s moved by o, or NoSquare if that leaves the board.
func (p *Position) shift(s chess.Square, o offset) chess.Square {
	f, r := s.File()+o.df, s.Rank()+o.dr
	if f < 0 || f > p.v.MaxFile || r < 0 || r > p.v.MaxRank {
		return chess.NoSquare
	}
	return chess.MakeSquare(f, r)
}

// attacksFrom returns the squares a piece of colour c and type pt on s
// attacks given the occupancy. Own pieces are included; callers mask them.
func (p *Position) attacksFrom(c chess.Colour, pt chess.PieceType, s chess.Square, occupied chess.Bitboard) chess.Bitboard {
	var b chess.Bitboard
	mt := p.v.MovementType(pt)
	switch mt {
	case chess.Pawn:
		b = p.stepTargets(c, s, []offset{{-1, 1}, {1, 1}})
	case chess.Soldier:
		b = p.soldierTargets(c, s)
	case chess.Horse:
		b = p.lameTargets(s, knightJumps, occupied, horseBlocks)
	case chess.Elephant:
		b = p.lameTargets(s, alfilJumps, occupied, elephantBlocks)
	case chess.JanggiElephant:
		b = p.lameTargets(s, janggiElephantJumps, occupied, janggiElephantBlocks)
	case chess.Cannon:
		b = p.hopperTargets(s, occupied, false).captures
	case chess.JanggiCannon:
		b = p.hopperTargets(s, occupied, true).captures
	default:
		m := movements[mt]
		b = p.stepTargets(c, s, m.steps).Or(p.slideTargets(c, s, m.slides, occupied))
	}
	if p.v.PalaceDiagonals && (pt == chess.King || p.inPalace(c, pt)) {
		b = b.Or(p.palaceDiagonalTargets(c, pt, s))
	}
	return b.And(p.v.MobilityRegion(c, pt))
}

// quietsFrom returns the empty squares a piece may move to without
// capturing. Pawns are handled by the pawn generator.
func (p *Position) quietsFrom(c chess.Colour, pt chess.PieceType, s chess.Square, occupied chess.Bitboard) chess.Bitboard {
	var b chess.Bitboard
	switch p.v.MovementType(pt) {
	case chess.Cannon:
		b = p.slideTargets(c, s, orthogonal, occupied)
	case chess.JanggiCannon:
		b = p.hopperTargets(s, occupied, true).quiets
	default:
		b = p.attacksFrom(c, pt, s, occupied)
	}
	return b.AndNot(occupied).And(p.v.MobilityRegion(c, pt))
}

func (p *Position) stepTargets(c chess.Colour, s chess.Square, steps []offset) chess.Bitboard {
	var b chess.Bitboard
	for _, o := range steps {
		b = b.With(p.shift(s, relative(c, o)))
	}
	return b
}

func (p *Position) slideTargets(c chess.Colour, s chess.Square, dirs []offset, occupied chess.Bitboard) chess.Bitboard {
	var b chess.Bitboard
	for _, o := range dirs {
		o = relative(c, o)
		for t := p.shift(s, o); t != chess.NoSquare; t = p.shift(t, o) {
			b = b.With(t)
			if occupied.Has(t) {
				break
			}
		}
	}
	return b
}

func (p *Position) soldierTargets(c chess.Colour, s chess.Square) chess.Bitboard {
	b := p.stepTargets(c, s, forwardStep)
	if chess.RelativeRank(c, s, p.v.MaxRank) >= p.v.SoldierPromotionRank {
		b = b.Or(p.stepTargets(c, s, sideSteps))
	}
	return b
}

func horseBlocks(o offset) []offset {
	if abs(o.df) == 2 {
		return []offset{{sign(o.df), 0}}
	}
	return []offset{{0, sign(o.dr)}}
}

func elephantBlocks(o offset) []offset {
	return []offset{{sign(o.df), sign(o.dr)}}
}

func janggiElephantBlocks(o offset) []offset {
	sf, sr := sign(o.df), sign(o.dr)
	if abs(o.dr) == 3 {
		return []offset{{0, sr}, {sf, 2 * sr}}
	}
	return []offset{{sf, 0}, {2 * sf, sr}}
}

// lameTargets returns leaper targets whose intermediate squares are empty.
func (p *Position) lameTargets(s chess.Square, jumps []offset, occupied chess.Bitboard, blocks func(offset) []offset) chess.Bitboard {
	var b chess.Bitboard
	for _, o := range jumps {
		t := p.shift(s, o)
		if t == chess.NoSquare {
			continue
		}
		clear := true
		for _, blk := range blocks(o) {
			if occupied.Has(p.shift(s, blk)) {
				clear = false
				break
			}
		}
		if clear {
			b = b.With(t)
		}
	}
	return b
}

type hopTargets struct {
	quiets, captures chess.Bitboard
}

// hopperTargets walks each orthogonal ray past one screen. For janggi
// cannons the screen and the victim may not be cannons themselves, and
// quiet moves also need a screen.
func (p *Position) hopperTargets(s chess.Square, occupied chess.Bitboard, janggi bool) hopTargets {
	var h hopTargets
	for _, o := range orthogonal {
		screened := false
		for t := p.shift(s, o); t != chess.NoSquare; t = p.shift(t, o) {
			if !screened {
				if occupied.Has(t) {
					if janggi && p.st.board[t].Type() == chess.JanggiCannon {
						break
					}
					screened = true
				}
				continue
			}
			if occupied.Has(t) {
				if !janggi || p.st.board[t].Type() != chess.JanggiCannon {
					h.captures = h.captures.With(t)
				}
				break
			}
			if janggi {
				h.quiets = h.quiets.With(t)
			}
		}
	}
	return h
}

func (p *Position) inPalace(c chess.Colour, pt chess.PieceType) bool {
	return p.v.MobilityRegion(c, pt) != p.v.Board() && p.v.MobilityRegion(c, pt) == p.v.MobilityRegion(c, chess.King)
}

// palaceDiagonalTargets adds the diagonal steps along the palace lines:
// from the centre to every corner and from a corner to the centre.
func (p *Position) palaceDiagonalTargets(c chess.Colour, pt chess.PieceType, s chess.Square) chess.Bitboard {
	palace := p.v.MobilityRegion(c, pt)
	if !palace.Has(s) {
		return chess.EmptyBB
	}
	centre := palaceCentre(p, palace)
	if centre == chess.NoSquare {
		return chess.EmptyBB
	}
	var b chess.Bitboard
	if s == centre {
		for _, o := range diagonal {
			b = b.With(p.shift(s, o))
		}
		return b
	}
	if abs(s.File()-centre.File()) == 1 && abs(s.Rank()-centre.Rank()) == 1 {
		b = b.With(centre)
	}
	return b
}

// palaceCentre returns the square of the region whose eight neighbours all
// lie in the region.
func palaceCentre(p *Position, palace chess.Bitboard) chess.Square {
	for _, s := range palace.Squares() {
		inside := true
		for _, o := range kingSteps {
			if !palace.Has(p.shift(s, o)) {
				inside = false
				break
			}
		}
		if inside {
			return s
		}
	}
	return chess.NoSquare
}
