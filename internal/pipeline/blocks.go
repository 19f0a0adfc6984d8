package pipeline

import (
	"regexp"
	"strings"
)

// Block markers recognized by the scanner.
const (
	templateOpen  = "{{"
	templateClose = "}}"
	poemOpen      = "<blockquote><poem>"
	poemClose     = "</poem></blockquote>"
)

// DefaultInfoboxTemplate is the infobox template recognized when none is configured.
const DefaultInfoboxTemplate = "Faginfo"

// poemWrapperPattern matches the verse and quote tokens left on captured lines.
var poemWrapperPattern = regexp.MustCompile(`(</?poem>)?</?blockquote>(</?poem>)?`)

// ScanState is the state of a block capture.
type ScanState int

// Capture states. A machine leaves Idle on its opening marker and reaches
// Done on the line holding its closing marker. Done is terminal.
const (
	Idle ScanState = iota
	Capturing
	Done
)

// String returns the state name.
func (s ScanState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Capturing:
		return "capturing"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// tableMachine captures the first infobox template of a document.
type tableMachine struct {
	state   ScanState
	openers []string
	table   InfoTable
}

func newTableMachine(templates []string) *tableMachine {
	openers := make([]string, len(templates))
	for i, name := range templates {
		openers[i] = templateOpen + name
	}
	return &tableMachine{openers: openers}
}

// step feeds one line to the machine.
func (m *tableMachine) step(line string) {
	switch m.state {
	case Idle:
		if !m.opens(line) {
			return
		}
		// Fields start on the line after the opener.
		m.state = Capturing
		m.table.Found = true
	case Capturing:
		m.capture(line)
	}
}

// capture collects the fields of one whole line and closes the block when
// the line holds the closing marker.
func (m *tableMachine) capture(line string) {
	for _, segment := range strings.Split(line, "|") {
		if entry, ok := parseInfoSegment(segment); ok {
			m.table.Entries = append(m.table.Entries, entry)
		}
	}
	if strings.Contains(line, templateClose) {
		m.state = Done
	}
}

// opens reports whether line holds a recognized opener.
func (m *tableMachine) opens(line string) bool {
	for _, opener := range m.openers {
		if strings.Contains(line, opener) {
			return true
		}
	}
	return false
}

// poemMachine captures the first quoted-verse block of a document.
type poemMachine struct {
	state ScanState
	poem  Poem
}

func (m *poemMachine) step(line string) {
	switch m.state {
	case Idle:
		idx := strings.Index(line, poemOpen)
		if idx < 0 {
			return
		}
		m.state = Capturing
		m.poem.Found = true
		m.capture(line[idx:])
	case Capturing:
		m.capture(line)
	}
}

func (m *poemMachine) capture(line string) {
	closed := false
	if idx := strings.Index(line, poemClose); idx >= 0 {
		line = line[:idx+len(poemClose)]
		closed = true
	}
	stripped := poemWrapperPattern.ReplaceAllLiteralString(line, "")
	// A line reduced to nothing by stripping held only wrapper tokens.
	if stripped != "" || stripped == line {
		m.poem.Lines = append(m.poem.Lines, stripped)
	}
	if closed {
		m.state = Done
	}
}

// BlockScan is the outcome of one scanner pass.
type BlockScan struct {
	Table      InfoTable
	Poem       Poem
	TableState ScanState
	PoemState  ScanState
}

// ScanBlocks walks the lines of content once and captures the first infobox
// template and the first poem block. Both machines see every line and do
// not interact. templates lists the recognized infobox template names.
func ScanBlocks(content string, templates []string) BlockScan {
	table := newTableMachine(templates)
	poem := &poemMachine{}

	for _, line := range strings.Split(content, "\n") {
		if table.state == Done && poem.state == Done {
			break
		}
		table.step(line)
		poem.step(line)
	}

	return BlockScan{
		Table:      table.table,
		Poem:       poem.poem,
		TableState: table.state,
		PoemState:  poem.state,
	}
}
