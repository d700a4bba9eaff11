package format

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/mortar/pkg/errors"
	"github.com/matzehuels/mortar/pkg/target"
)

// maxExpandDepth bounds recursive variable expansion so self-referential
// definitions fail instead of hanging.
const maxExpandDepth = 32

// Makefile parses a practical subset of make syntax: plain rules with
// tab-indented recipes, comments, backslash continuations, variable
// assignment (=, :=, ?=, +=) with $(VAR) and ${VAR} expansion, and
// .PHONY. Recipes may use the automatic variables $@, $<, and $^.
// Pattern rules and directives such as include are not supported and
// fail with a parse error.
//
// Make semantics map directly onto targets: the names left of the colon
// become the target's name and outputs (the first name is primary, the
// rest stay referable), and prerequisites become a mixed dependency
// list that finalization splits into input files and target references.
// Undefined variables expand from the environment, then to empty.
type Makefile struct{}

func (m *Makefile) Name() string { return "makefile" }

func (m *Makefile) Supports(filename string) bool {
	return strings.EqualFold(filename, "makefile") ||
		strings.EqualFold(filename, "gnumakefile") ||
		strings.ToLower(filepath.Ext(filename)) == ".mk"
}

func (m *Makefile) Parse(path string) ([]*target.Target, error) {
	data, err := readBuildFile(path)
	if err != nil {
		return nil, err
	}
	p := &makefileParser{
		path:  path,
		vars:  make(map[string]mkVar),
		phony: make(map[string]bool),
	}
	if err := p.run(string(data)); err != nil {
		return nil, err
	}
	return p.targets, nil
}

// ruleNames lets a rule be referred to by any name left of its colon,
// the way make prerequisites name output files of other rules.
type ruleNames struct {
	names []string
}

func (r *ruleNames) HasName(t *target.Target, name string) bool {
	return slices.Contains(r.names, name)
}

// mkVar is one variable definition. Simple (:=) assignments are
// expanded at definition time; recursive (=) ones at reference time.
type mkVar struct {
	value    string
	expanded bool
}

type makefileParser struct {
	path    string
	vars    map[string]mkVar
	phony   map[string]bool
	targets []*target.Target
	current *target.Target

	// auto holds the automatic variables of the recipe being expanded;
	// nil outside recipe lines.
	auto map[string]string
}

// srcLine is one logical line after continuation folding, tagged with
// the physical line number it started on.
type srcLine struct {
	text string
	num  int
}

func (p *makefileParser) run(data string) error {
	for _, line := range logicalLines(data) {
		if strings.HasPrefix(line.text, "\t") {
			if err := p.recipeLine(line); err != nil {
				return err
			}
			continue
		}

		text := line.text
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			// Blank and comment lines do not end a recipe.
			continue
		}

		if name, op, value, ok := splitAssignment(text); ok {
			if err := p.assign(name, op, value, line.num); err != nil {
				return err
			}
			p.current = nil
			continue
		}

		if err := p.ruleLine(text, line.num); err != nil {
			return err
		}
	}

	// .PHONY targets have no output files; their name is a label, not
	// something the commands create.
	for name := range p.phony {
		for _, t := range p.targets {
			if t.Refers(name) {
				t.Outputs = nil
			}
		}
	}
	return nil
}

func (p *makefileParser) recipeLine(line srcLine) error {
	if p.current == nil {
		if strings.TrimSpace(line.text) == "" {
			return nil
		}
		return errors.New(errors.ErrCodeParse, "%s:%d: recipe before first rule", p.path, line.num)
	}
	prereqs := p.current.Deps.Names()
	p.auto = map[string]string{
		"@": p.current.Name,
		"<": first(prereqs),
		"^": strings.Join(prereqs, " "),
	}
	cmd, err := p.expand(strings.TrimSpace(line.text), line.num, 0)
	p.auto = nil
	if err != nil {
		return err
	}
	// @ silences make's own echo and - ignores failures; neither applies
	// here (commands are echoed by the frontend, failures always stop),
	// so the prefixes are dropped to keep the command runnable.
	for cmd != "" && (cmd[0] == '@' || cmd[0] == '-') {
		cmd = strings.TrimSpace(cmd[1:])
	}
	if cmd != "" {
		p.current.Commands = append(p.current.Commands, cmd)
	}
	return nil
}

func (p *makefileParser) ruleLine(text string, num int) error {
	expanded, err := p.expand(text, num, 0)
	if err != nil {
		return err
	}
	colon := strings.IndexByte(expanded, ':')
	if colon < 0 {
		return errors.New(errors.ErrCodeParse,
			"%s:%d: expected a rule or variable assignment", p.path, num)
	}
	names := strings.Fields(expanded[:colon])
	prereqs := strings.Fields(expanded[colon+1:])

	if len(names) == 0 {
		return errors.New(errors.ErrCodeParse, "%s:%d: rule has no target name", p.path, num)
	}
	if names[0] == ".PHONY" {
		for _, name := range prereqs {
			p.phony[name] = true
		}
		p.current = nil
		return nil
	}
	if strings.HasPrefix(names[0], ".") {
		// Other special targets (.SUFFIXES, .DEFAULT, ...) carry no
		// meaning here.
		p.current = nil
		return nil
	}

	t := &target.Target{
		Name:    names[0],
		Outputs: slices.Clone(names),
		Deps:    target.MixedDeps(prereqs...),
		Extra:   &ruleNames{names: names},
	}
	p.targets = append(p.targets, t)
	p.current = t
	return nil
}

func (p *makefileParser) assign(name, op, value string, num int) error {
	switch op {
	case ":=":
		expanded, err := p.expand(value, num, 0)
		if err != nil {
			return err
		}
		p.vars[name] = mkVar{value: expanded, expanded: true}
	case "?=":
		if _, ok := p.vars[name]; ok {
			return nil
		}
		if _, ok := os.LookupEnv(name); ok {
			return nil
		}
		p.vars[name] = mkVar{value: value}
	case "+=":
		if prev, ok := p.vars[name]; ok {
			if prev.expanded {
				expanded, err := p.expand(value, num, 0)
				if err != nil {
					return err
				}
				value = expanded
			}
			if prev.value != "" {
				value = prev.value + " " + value
			}
			p.vars[name] = mkVar{value: value, expanded: prev.expanded}
			return nil
		}
		p.vars[name] = mkVar{value: value}
	default:
		p.vars[name] = mkVar{value: value}
	}
	return nil
}

// expand resolves $(NAME), ${NAME}, and $X references. File variables
// win over the environment; undefined names expand to nothing, as in
// make. $$ produces a literal dollar for the shell.
func (p *makefileParser) expand(s string, num, depth int) (string, error) {
	if depth > maxExpandDepth {
		return "", errors.New(errors.ErrCodeParse,
			"%s:%d: variable expansion loops", p.path, num)
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '$' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(s) {
			b.WriteByte(c)
			break
		}
		switch next := s[i+1]; next {
		case '$':
			b.WriteByte('$')
			i++
		case '(', '{':
			closer := byte(')')
			if next == '{' {
				closer = '}'
			}
			end := strings.IndexByte(s[i+2:], closer)
			if end < 0 {
				return "", errors.New(errors.ErrCodeParse,
					"%s:%d: unterminated variable reference", p.path, num)
			}
			val, err := p.lookupVar(s[i+2:i+2+end], num, depth)
			if err != nil {
				return "", err
			}
			b.WriteString(val)
			i += 2 + end
		default:
			val, err := p.lookupVar(string(next), num, depth)
			if err != nil {
				return "", err
			}
			b.WriteString(val)
			i++
		}
	}
	return b.String(), nil
}

func (p *makefileParser) lookupVar(name string, num, depth int) (string, error) {
	if val, ok := p.auto[name]; ok {
		return val, nil
	}
	if v, ok := p.vars[name]; ok {
		if v.expanded {
			return v.value, nil
		}
		return p.expand(v.value, num, depth+1)
	}
	if val, ok := os.LookupEnv(name); ok {
		return val, nil
	}
	return "", nil
}

func first(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

// splitAssignment recognizes `NAME = value` lines with the =, :=, ?=,
// and += operators. Rule lines fall through: a colon before the equals
// sign (as in `app: FLAG=1`) means the equals belongs to a prerequisite.
func splitAssignment(line string) (name, op, value string, ok bool) {
	eq := strings.IndexByte(line, '=')
	if eq < 0 {
		return "", "", "", false
	}
	if colon := strings.IndexByte(line, ':'); colon >= 0 && colon < eq-1 {
		return "", "", "", false
	}

	name = line[:eq]
	op = "="
	switch {
	case strings.HasSuffix(name, ":"):
		op, name = ":=", name[:len(name)-1]
	case strings.HasSuffix(name, "?"):
		op, name = "?=", name[:len(name)-1]
	case strings.HasSuffix(name, "+"):
		op, name = "+=", name[:len(name)-1]
	}
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, " \t$") {
		return "", "", "", false
	}
	return name, op, strings.TrimSpace(line[eq+1:]), true
}

// logicalLines splits the file into lines, folding backslash
// continuations into the line they started on.
func logicalLines(data string) []srcLine {
	raw := strings.Split(data, "\n")
	out := make([]srcLine, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		text := strings.TrimSuffix(raw[i], "\r")
		num := i + 1
		for strings.HasSuffix(text, "\\") && i+1 < len(raw) {
			i++
			next := strings.TrimSpace(strings.TrimSuffix(raw[i], "\r"))
			text = strings.TrimRight(strings.TrimSuffix(text, "\\"), " \t") + " " + next
		}
		out = append(out, srcLine{text: text, num: num})
	}
	return out
}
