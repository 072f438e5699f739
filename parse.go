package pathkit

import (
	"fmt"
	"strconv"
)

// ParsePath parses a string in the SVG path-data mini-language and
// returns the resulting path. All commands are supported: moveto,
// lineto, horizontal/vertical lineto, cubic and quadratic curveto with
// their smooth shorthand variants, elliptical arcto and closepath, each
// in absolute and relative form, with implicit command repetition.
func ParsePath(s string) (*Path, error) {
	p := &parser{data: s, b: NewBuilder()}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.b.Path(), nil
}

// MustParsePath is like ParsePath but panics on error. It simplifies
// variable initialization with constant path strings.
func MustParsePath(s string) *Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// cmdArgs maps each absolute command letter to its argument count.
var cmdArgs = map[byte]int{
	'M': 2, 'Z': 0, 'L': 2, 'H': 1, 'V': 1,
	'C': 6, 'S': 4, 'Q': 4, 'T': 2, 'A': 7,
}

type parser struct {
	data string
	pos  int
	b    *Builder

	start    Point // start of the current contour, target of Z
	current  Point
	quadCtrl Point // last quadratic control point, for T reflection
	cubeCtrl Point // last cubic control point, for S reflection
	prevCmd  byte
}

func (p *parser) run() error {
	p.skipSeparators()
	if p.pos >= len(p.data) {
		return nil
	}
	if c := p.data[p.pos]; c < 'A' {
		return fmt.Errorf("pathkit: path must start with a command, got %q at position %d", c, p.pos+1)
	}

	p.prevCmd = 0
	for {
		p.skipSeparators()
		if p.pos >= len(p.data) {
			return nil
		}

		cmd := p.command()
		upper := cmd &^ 0x20
		n, ok := cmdArgs[upper]
		if !ok {
			return fmt.Errorf("pathkit: unknown command %q at position %d", cmd, p.pos+1)
		}

		var f [7]float64
		for j := 0; j < n; j++ {
			var err error
			if upper == 'A' && (j == 3 || j == 4) {
				f[j], err = p.flag(cmd)
			} else {
				f[j], err = p.number(cmd)
			}
			if err != nil {
				return err
			}
		}

		if err := p.apply(cmd, f); err != nil {
			return err
		}
		p.prevCmd = cmd
	}
}

// command returns the command letter for the next argument group. A
// number where a command is expected repeats the previous command (an
// implicit 'L' after 'M').
func (p *parser) command() byte {
	c := p.data[p.pos]
	canRepeat := p.prevCmd != 0 && p.prevCmd != 'Z' && p.prevCmd != 'z'
	if canRepeat && (c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+') {
		switch p.prevCmd {
		case 'M':
			return 'L'
		case 'm':
			return 'l'
		}
		return p.prevCmd
	}
	p.pos++
	return c
}

// number scans one decimal or scientific-notation float.
func (p *parser) number(cmd byte) (float64, error) {
	p.skipSeparators()
	start := p.pos
	i := p.pos
	if i < len(p.data) && (p.data[i] == '-' || p.data[i] == '+') {
		i++
	}
	for i < len(p.data) && (p.data[i] >= '0' && p.data[i] <= '9' || p.data[i] == '.') {
		i++
	}
	if i < len(p.data) && (p.data[i] == 'e' || p.data[i] == 'E') {
		i++
		if i < len(p.data) && (p.data[i] == '-' || p.data[i] == '+') {
			i++
		}
		for i < len(p.data) && p.data[i] >= '0' && p.data[i] <= '9' {
			i++
		}
	}
	if i == start {
		return 0, fmt.Errorf("pathkit: expected number after command %q at position %d", cmd, p.pos+1)
	}
	v, err := strconv.ParseFloat(p.data[start:i], 64)
	if err != nil {
		return 0, fmt.Errorf("pathkit: bad number %q at position %d", p.data[start:i], start+1)
	}
	p.pos = i
	return v, nil
}

// flag scans a single-character arc flag, which may be run together
// with the following number ("a 5 5 0 1 1 10 0" and "a5 5 0 1110 0"
// are equivalent).
func (p *parser) flag(cmd byte) (float64, error) {
	p.skipSeparators()
	if p.pos < len(p.data) {
		switch p.data[p.pos] {
		case '0':
			p.pos++
			return 0, nil
		case '1':
			p.pos++
			return 1, nil
		}
	}
	return 0, fmt.Errorf("pathkit: arc flags must be 0 or 1 in command %q at position %d", cmd, p.pos+1)
}

func (p *parser) skipSeparators() {
	for p.pos < len(p.data) {
		switch p.data[p.pos] {
		case ' ', ',', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// apply executes one scanned command against the builder.
func (p *parser) apply(cmd byte, f [7]float64) error {
	rel := cmd >= 'a'
	abs := func(x, y float64) Point {
		if rel {
			return Point{X: p.current.X + x, Y: p.current.Y + y}
		}
		return Point{X: x, Y: y}
	}

	switch cmd &^ 0x20 {
	case 'M':
		pt := abs(f[0], f[1])
		p.b.MoveTo(pt.X, pt.Y)
		p.start = pt
		p.current = pt
	case 'Z':
		p.b.Close()
		p.current = p.start
	case 'L':
		pt := abs(f[0], f[1])
		p.b.LineTo(pt.X, pt.Y)
		p.current = pt
	case 'H':
		x := f[0]
		if rel {
			x += p.current.X
		}
		p.b.LineTo(x, p.current.Y)
		p.current.X = x
	case 'V':
		y := f[0]
		if rel {
			y += p.current.Y
		}
		p.b.LineTo(p.current.X, y)
		p.current.Y = y
	case 'C':
		c1 := abs(f[0], f[1])
		c2 := abs(f[2], f[3])
		pt := abs(f[4], f[5])
		p.b.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		p.cubeCtrl = c2
		p.current = pt
	case 'S':
		c1 := p.current
		if prev := p.prevCmd &^ 0x20; prev == 'C' || prev == 'S' {
			c1 = p.current.Mul(2).Sub(p.cubeCtrl)
		}
		c2 := abs(f[0], f[1])
		pt := abs(f[2], f[3])
		p.b.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		p.cubeCtrl = c2
		p.current = pt
	case 'Q':
		c := abs(f[0], f[1])
		pt := abs(f[2], f[3])
		p.b.QuadTo(c.X, c.Y, pt.X, pt.Y)
		p.quadCtrl = c
		p.current = pt
	case 'T':
		c := p.current
		if prev := p.prevCmd &^ 0x20; prev == 'Q' || prev == 'T' {
			c = p.current.Mul(2).Sub(p.quadCtrl)
		}
		pt := abs(f[0], f[1])
		p.b.QuadTo(c.X, c.Y, pt.X, pt.Y)
		p.quadCtrl = c
		p.current = pt
	case 'A':
		pt := abs(f[5], f[6])
		p.b.ArcTo(f[0], f[1], f[2], f[3] == 1, f[4] == 1, pt.X, pt.Y)
		p.current = pt
	}
	return nil
}
