package surface

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
)

// User facing messages of the import and export actions
const (
	MsgNoFilename  = "Please enter a filename first."
	MsgNoSuchFile  = "The entered file does not exist."
	MsgExported    = "Exported to: "
	MsgImported    = "Imported from: "
	MsgWriteFailed = "Error writing file: "
	MsgReadFailed  = "Error reading file: "
)

func (e *Engine) notify(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if e.notifier == nil {
		log.Printf("%s", msg)
		return
	}
	e.notifier.ShowNotification(msg)
}

// issue returns the user facing part of err
func issue(err error) string {
	if s := fmsg.GetIssue(err); s != "" {
		return s
	}
	return err.Error()
}

// ExportMapping writes the mapping table to path. The outcome is reported
// as a notification; the returned error is for callers that also log.
func (e *Engine) ExportMapping(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		e.notify("%s", MsgNoFilename)
		return fault.New("no filename", ftag.With(ftag.InvalidArgument))
	}

	if err := e.table.ExportTo(path); err != nil {
		e.notify("%s%s", MsgWriteFailed, issue(err))
		return err
	}
	e.notify("%s%s", MsgExported, path)
	return nil
}

// ImportMapping replaces the mapping table with the file at path. On any
// error the table is left as it was.
func (e *Engine) ImportMapping(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		e.notify("%s", MsgNoFilename)
		return fault.New("no filename", ftag.With(ftag.InvalidArgument))
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		e.notify("%s", MsgNoSuchFile)
		return fault.Wrap(err, ftag.With(ftag.NotFound))
	}

	if err := e.table.ImportFrom(path); err != nil {
		e.notify("%s%s", MsgReadFailed, issue(err))
		return err
	}

	e.ResetCache()
	e.UpdateKeyTranslation()
	e.notify("%s%s", MsgImported, path)
	return nil
}
