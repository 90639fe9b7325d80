// Package dataset renders labelled summary entries and the anonymised copy
// presented to raters.
package dataset

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

type Label string

const (
	LabelSentences Label = "SENTENC"
	LabelReadme    Label = "README!"
	LabelSimilar   Label = "SIMILAR"
	LabelSubmitted Label = "SUBMITD"
)

// Labels lists the section labels in generation order.
var Labels = []Label{LabelSentences, LabelReadme, LabelSimilar, LabelSubmitted}

const Footer = "========="

type Section struct {
	Label Label
	Body  string
}

// Render formats the section under heading. Submitted bodies already end
// with a newline, so no separator is added before the footer.
func (s Section) Render(heading string) string {
	sep := "\n"
	if s.Label == LabelSubmitted {
		sep = ""
	}

	return "=" + heading + "=\n" + s.Body + sep + Footer
}

// Entry is one repository's set of summaries.
type Entry struct {
	ID       uuid.UUID
	URL      string
	Sections []Section
}

func NewEntry(url string, sections ...Section) Entry {
	return Entry{
		ID:       uuid.New(),
		URL:      url,
		Sections: sections,
	}
}

// Shuffle reorders the sections uniformly. A nil r uses the global source.
func (e *Entry) Shuffle(r *rand.Rand) {
	swap := func(i, j int) { e.Sections[i], e.Sections[j] = e.Sections[j], e.Sections[i] }
	if r == nil {
		rand.Shuffle(len(e.Sections), swap)
		return
	}
	r.Shuffle(len(e.Sections), swap)
}

func (e Entry) header() string {
	return fmt.Sprintf("\n%s\nid: %s\n", e.URL, e.ID)
}

// Labelled renders the master copy with the real section labels.
func (e Entry) Labelled() string {
	var b strings.Builder
	b.WriteString(e.header())
	for _, s := range e.Sections {
		b.WriteString(s.Render(string(s.Label)))
		b.WriteByte('\n')
	}

	return b.String()
}

// Hidden renders the rater copy: labels become OPTION1..n in section order.
func (e Entry) Hidden() string {
	var b strings.Builder
	b.WriteString(e.header())
	for i, s := range e.Sections {
		b.WriteString(s.Render(optionLabel(i + 1)))
		b.WriteByte('\n')
	}

	return b.String()
}

func optionLabel(n int) string {
	return fmt.Sprintf("OPTION%d", n)
}
