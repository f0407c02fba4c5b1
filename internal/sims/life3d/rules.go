package life3d

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MaxNeighbors is the size of the 3D Moore neighborhood.
const MaxNeighbors = 26

// Rule is a pair of neighbor-count bitmasks. Bit n of Survival keeps a live
// cell with n neighbors alive, bit n of Birth brings a dead one to life.
type Rule struct {
	Survival uint32
	Birth    uint32
}

// DefaultRule is used whenever a rule cannot be parsed.
var DefaultRule = Rule{Survival: 1<<4 | 1<<5, Birth: 1 << 5}

// Survives reports whether a live cell with n neighbors stays alive.
func (r Rule) Survives(n int) bool {
	return n >= 0 && n <= MaxNeighbors && r.Survival&(1<<uint(n)) != 0
}

// Born reports whether a dead cell with n neighbors comes alive.
func (r Rule) Born(n int) bool {
	return n >= 0 && n <= MaxNeighbors && r.Birth&(1<<uint(n)) != 0
}

// String formats the rule as S<digits>/B<digits>. Counts of ten or more are
// comma separated.
func (r Rule) String() string {
	return "S" + maskString(r.Survival) + "/B" + maskString(r.Birth)
}

func maskString(mask uint32) string {
	var b strings.Builder
	wide := mask>>10 != 0
	for n := 0; n <= MaxNeighbors; n++ {
		if mask&(1<<uint(n)) == 0 {
			continue
		}
		if wide && b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

// ParseRule reads "S45/B5" style rules. The order of the two halves is free
// and lowercase letters are accepted. Counts of ten or more must be comma
// separated ("S4,5,10/B5"). The legacy four-digit form "4555" (survive 4..5,
// birth 5..5) is also understood.
func ParseRule(s string) (Rule, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rule{}, errors.New("empty rule")
	}
	if len(s) == 4 && isDigits(s) {
		return parseLegacyRule(s)
	}
	var r Rule
	var seenS, seenB bool
	for _, part := range strings.Split(s, "/") {
		part = strings.TrimSpace(part)
		if part == "" {
			return Rule{}, errors.Errorf("rule %q: empty section", s)
		}
		mask, err := parseCounts(part[1:])
		if err != nil {
			return Rule{}, errors.Wrapf(err, "rule %q", s)
		}
		switch part[0] {
		case 'S', 's':
			if seenS {
				return Rule{}, errors.Errorf("rule %q: duplicate S section", s)
			}
			seenS = true
			r.Survival = mask
		case 'B', 'b':
			if seenB {
				return Rule{}, errors.Errorf("rule %q: duplicate B section", s)
			}
			seenB = true
			r.Birth = mask
		default:
			return Rule{}, errors.Errorf("rule %q: section %q must start with S or B", s, part)
		}
	}
	if !seenS || !seenB {
		return Rule{}, errors.Errorf("rule %q: need both S and B sections", s)
	}
	if r.Birth&1 != 0 {
		return Rule{}, errors.Errorf("rule %q: birth on zero neighbors is not supported", s)
	}
	return r, nil
}

// MustParseRule is ParseRule for compiled-in tables.
func MustParseRule(s string) Rule {
	r, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return r
}

func parseCounts(s string) (uint32, error) {
	var mask uint32
	if s == "" {
		return 0, nil
	}
	if strings.Contains(s, ",") {
		for _, f := range strings.Split(s, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return 0, errors.Wrapf(err, "count %q", f)
			}
			if n < 0 || n > MaxNeighbors {
				return 0, errors.Errorf("count %d out of range 0..%d", n, MaxNeighbors)
			}
			mask |= 1 << uint(n)
		}
		return mask, nil
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, errors.Errorf("unexpected %q in counts %q", c, s)
		}
		mask |= 1 << uint(c-'0')
	}
	return mask, nil
}

func parseLegacyRule(s string) (Rule, error) {
	lmin, lmax := int(s[0]-'0'), int(s[1]-'0')
	bmin, bmax := int(s[2]-'0'), int(s[3]-'0')
	if lmin > lmax || bmin > bmax {
		return Rule{}, errors.Errorf("rule %q: ranges must be ascending", s)
	}
	if bmin == 0 {
		return Rule{}, errors.Errorf("rule %q: birth on zero neighbors is not supported", s)
	}
	return Rule{Survival: rangeMask(lmin, lmax), Birth: rangeMask(bmin, bmax)}, nil
}

func rangeMask(lo, hi int) uint32 {
	var m uint32
	for n := lo; n <= hi; n++ {
		m |= 1 << uint(n)
	}
	return m
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// SelectionMode says how the effect picks rules.
type SelectionMode int

const (
	// SelectFixed runs one literal rule.
	SelectFixed SelectionMode = iota
	// SelectPatterns cycles every family with stationary patterns.
	SelectPatterns
	// SelectGliders cycles every family with known gliders.
	SelectGliders
)

// Selection is a parsed rule argument: either a literal rule or one of the
// aggregate selectors "P" and "G".
type Selection struct {
	Mode SelectionMode
	Rule Rule
}

// ParseSelection parses a rule argument.
func ParseSelection(s string) (Selection, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "P":
		return Selection{Mode: SelectPatterns}, nil
	case "G":
		return Selection{Mode: SelectGliders}, nil
	}
	r, err := ParseRule(s)
	if err != nil {
		return Selection{}, err
	}
	return Selection{Mode: SelectFixed, Rule: r}, nil
}

// String returns the argument form of the selection.
func (s Selection) String() string {
	switch s.Mode {
	case SelectPatterns:
		return "P"
	case SelectGliders:
		return "G"
	}
	return s.Rule.String()
}

// Candidates lists the family indexes the selection cycles through. A fixed
// rule yields its own family when it has one.
func (s Selection) Candidates() []int {
	var out []int
	for i, f := range families {
		switch s.Mode {
		case SelectPatterns:
			if len(f.Patterns) > 0 {
				out = append(out, i)
			}
		case SelectGliders:
			if len(GlidersFor(f.Rule)) > 0 {
				out = append(out, i)
			}
		default:
			if f.Rule == s.Rule {
				out = append(out, i)
			}
		}
	}
	return out
}
