package mapping

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/google/uuid"

	"github.com/PixPMusic/gopher-flexi/internal/command"
	"github.com/PixPMusic/gopher-flexi/internal/knob"
	"github.com/PixPMusic/gopher-flexi/internal/midi"
)

// FormatVersion is the newest mapping file version this build reads
const FormatVersion = 1

const fileHeader = "# gopher-flexi mapping"

// Export writes every slot of the table. Output depends only on the table
// contents, so exporting twice yields identical files.
func (t *Table) Export(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, fileHeader)
	fmt.Fprintf(bw, "version %d\n", FormatVersion)
	if t.ID != uuid.Nil {
		fmt.Fprintf(bw, "id %s\n", t.ID)
	}
	fmt.Fprintln(bw, "# slot type channel number command knob_mode send_value")

	for i, s := range t.slots {
		ch := "*"
		if s.Channel != midi.AnyChannel {
			ch = strconv.Itoa(s.Channel)
		}
		num := "-"
		if s.Number != Unassigned {
			num = strconv.Itoa(s.Number)
		}
		fmt.Fprintf(bw, "%d %s %s %s %s %s %t\n", i, s.Type, ch, num, s.Command, s.KnobMode, s.SendValue)
	}

	if err := bw.Flush(); err != nil {
		return fault.Wrap(err, fmsg.WithDesc("write mapping", err.Error()))
	}
	return nil
}

// Import parses a mapping file and replaces the table. Nothing is changed
// unless the whole file is valid.
func (t *Table) Import(r io.Reader) error {
	id, slots, err := parse(r)
	if err != nil {
		return err
	}
	t.load(id, slots)
	return nil
}

// ExportTo writes the table to path through a temporary file in the same
// directory, so readers never see a partial file.
func (t *Table) ExportTo(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fault.Wrap(err, fmsg.WithDesc("create temp file", err.Error()))
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := t.Export(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fault.Wrap(err, fmsg.WithDesc("sync mapping", err.Error()))
	}
	if err := tmp.Close(); err != nil {
		return fault.Wrap(err, fmsg.WithDesc("close mapping", err.Error()))
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fault.Wrap(err, fmsg.WithDesc("rename mapping", err.Error()))
	}
	return nil
}

// ImportFrom reads and applies the mapping file at path
func (t *Table) ImportFrom(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fault.Wrap(err, fmsg.WithDesc("open mapping", err.Error()))
	}
	defer f.Close()

	if err := t.Import(f); err != nil {
		return fault.Wrap(err, fmsg.With(path))
	}
	return nil
}

func lineError(line int, format string, args ...any) error {
	issue := fmt.Sprintf("line %d: %s", line, fmt.Sprintf(format, args...))
	return fault.New(issue,
		ftag.With(ftag.InvalidArgument),
		fmsg.WithDesc(issue, issue),
	)
}

func parse(r io.Reader) (uuid.UUID, [NumSlots]Slot, error) {
	var (
		slots   [NumSlots]Slot
		filled  [NumSlots]bool
		id      uuid.UUID
		version bool
		lineNo  int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		if !version {
			if fields[0] != "version" || len(fields) != 2 {
				return id, slots, lineError(lineNo, "expected version header")
			}
			v, err := strconv.Atoi(fields[1])
			if err != nil || v < 1 {
				return id, slots, lineError(lineNo, "bad version %q", fields[1])
			}
			if v > FormatVersion {
				return id, slots, lineError(lineNo, "version %d is newer than supported version %d", v, FormatVersion)
			}
			version = true
			continue
		}

		if fields[0] == "id" {
			if len(fields) != 2 {
				return id, slots, lineError(lineNo, "expected id <uuid>")
			}
			parsed, err := uuid.Parse(fields[1])
			if err != nil {
				return id, slots, lineError(lineNo, "bad id: %v", err)
			}
			id = parsed
			continue
		}

		i, s, err := parseSlot(fields)
		if err != nil {
			return id, slots, lineError(lineNo, "%v", err)
		}
		if filled[i] {
			return id, slots, lineError(lineNo, "duplicate slot %d", i)
		}
		slots[i] = s
		filled[i] = true
	}
	if err := sc.Err(); err != nil {
		return id, slots, fault.Wrap(err, fmsg.WithDesc("read mapping", err.Error()))
	}

	if !version {
		return id, slots, lineError(lineNo, "missing version header")
	}
	for i, ok := range filled {
		if !ok {
			return id, slots, lineError(lineNo, "missing slot %d", i)
		}
	}
	return id, slots, nil
}

func parseSlot(fields []string) (int, Slot, error) {
	var s Slot
	if len(fields) != 7 {
		return 0, s, fmt.Errorf("expected 7 fields, got %d", len(fields))
	}

	i, err := strconv.Atoi(fields[0])
	if err != nil || i < 0 || i >= NumSlots {
		return 0, s, fmt.Errorf("bad slot index %q", fields[0])
	}

	if s.Type, err = midi.ParseMessageType(fields[1]); err != nil {
		return i, s, err
	}

	if fields[2] == "*" {
		s.Channel = midi.AnyChannel
	} else if s.Channel, err = strconv.Atoi(fields[2]); err != nil {
		return i, s, fmt.Errorf("bad channel %q", fields[2])
	}

	if fields[3] == "-" {
		s.Number = Unassigned
	} else if s.Number, err = strconv.Atoi(fields[3]); err != nil {
		return i, s, fmt.Errorf("bad number %q", fields[3])
	}

	if s.Command, err = command.Parse(fields[4]); err != nil {
		return i, s, err
	}
	if s.KnobMode, err = knob.ParseMode(fields[5]); err != nil {
		return i, s, err
	}

	switch fields[6] {
	case "true":
		s.SendValue = true
	case "false":
	default:
		return i, s, fmt.Errorf("bad send flag %q", fields[6])
	}

	// Out of range channel or number is caught here
	if err := s.Validate(); err != nil {
		return i, s, err
	}
	if s.Channel == midi.AnyChannel && fields[2] != "*" || s.Number == Unassigned && fields[3] != "-" {
		return i, s, fmt.Errorf("use * and - for wildcard channel and unassigned number")
	}
	return i, s, nil
}
