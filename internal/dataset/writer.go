package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/brogergvhs/repolabel/internal/util"
)

// Writer appends entries to a labelled and an optional hidden output.
type Writer struct {
	labelled io.Writer
	hidden   io.Writer
	closers  []io.Closer
}

func NewWriter(labelled, hidden io.Writer) *Writer {
	return &Writer{labelled: labelled, hidden: hidden}
}

// Create opens the output files. hiddenPath may be empty. With appendMode
// existing files are extended, otherwise truncated.
func Create(labelledPath, hiddenPath string, appendMode bool) (*Writer, error) {
	w := &Writer{}

	f, err := util.OpenOutput(labelledPath, appendMode)
	if err != nil {
		return nil, err
	}
	w.labelled = f
	w.closers = append(w.closers, f)

	if hiddenPath != "" {
		h, err := util.OpenOutput(hiddenPath, appendMode)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		w.hidden = h
		w.closers = append(w.closers, h)
	}

	return w, nil
}

func (w *Writer) Write(e Entry) error {
	if w.labelled != nil {
		if _, err := io.WriteString(w.labelled, e.Labelled()); err != nil {
			return fmt.Errorf("write labelled entry: %w", err)
		}
	}
	if w.hidden != nil {
		if _, err := io.WriteString(w.hidden, e.Hidden()); err != nil {
			return fmt.Errorf("write hidden entry: %w", err)
		}
	}

	return nil
}

func (w *Writer) Close() error {
	var errs []error
	for _, c := range w.closers {
		errs = append(errs, c.Close())
	}
	w.closers = nil

	return errors.Join(errs...)
}

var (
	reLabelLine = regexp.MustCompile(`^=(SENTENC|README!|SIMILAR|SUBMITD)=$`)
	reEntryID   = regexp.MustCompile(`^id: [0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
)

// StripLabels converts a labelled file into its hidden form. Option
// numbering restarts at every entry id line; URLs in section bodies do not
// affect it.
func StripLabels(r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)

	n := 0
	for sc.Scan() {
		line := sc.Text()

		switch {
		case reEntryID.MatchString(line):
			n = 0
		case reLabelLine.MatchString(line):
			n++
			if n > len(Labels) {
				n = 1
			}
			line = "=" + optionLabel(n) + "="
		}

		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}

	return sc.Err()
}

// StripLabelsFile writes the hidden form of src to dst.
func StripLabelsFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	var b strings.Builder
	if err := StripLabels(in, &b); err != nil {
		return fmt.Errorf("strip labels %s: %w", src, err)
	}

	return util.WriteFileAtomic(dst, []byte(b.String()))
}
