package command

import (
	"fmt"
	"strings"
)

// Group is the capability group a command reads and writes
type Group int

const (
	GroupGlobal Group = iota
	GroupTransport
	GroupLayout
	GroupTrack
	GroupMaster
	GroupDevice
	GroupBrowser
	GroupScene
	GroupClip
)

var groupNames = [...]string{"global", "transport", "layout", "track", "master", "device", "browser", "scene", "clip"}

func (g Group) String() string {
	if g < GroupGlobal || g > GroupClip {
		return fmt.Sprintf("Group(%d)", int(g))
	}
	return groupNames[g]
}

// Kind tells the dispatcher how an incoming value drives a command
type Kind int

const (
	Trigger    Kind = iota // Fires on press (value > 0)
	Continuous             // Absolute or relative value change
	Scroll                 // Relative only, rate limited
)

// Descriptor is the static description of a command
type Descriptor struct {
	Name  string // Persisted identifier
	Group Group
	Kind  Kind
}

// aliases are older spellings still accepted on import. Export always
// writes the descriptor name.
var aliases = map[string]Command{
	"TRACK_SELECTED_SET_VOLUME_TRACK":  TrackSelectedSetVolume,
	"LAYOUT_TOGGLE_MIXER_SENDSSECTION": LayoutToggleMixerSendsSection,
}

var byName = func() map[string]Command {
	m := make(map[string]Command, Count+len(aliases))
	for name, c := range aliases {
		m[name] = c
	}
	for i, d := range descriptors {
		m[d.Name] = Command(i)
	}
	return m
}()

// Valid returns true if c is a defined command
func (c Command) Valid() bool {
	return c >= 0 && int(c) < Count
}

// Describe returns the descriptor of c. Undefined values describe as Off.
func (c Command) Describe() Descriptor {
	if !c.Valid() {
		return descriptors[Off]
	}
	return descriptors[c]
}

func (c Command) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Command(%d)", int(c))
	}
	return descriptors[c].Name
}

// Group is a shortcut for Describe().Group
func (c Command) Group() Group {
	return c.Describe().Group
}

// Kind is a shortcut for Describe().Kind
func (c Command) Kind() Kind {
	return c.Describe().Kind
}

// Parse looks up a command by its persisted name (case insensitive)
func Parse(name string) (Command, error) {
	if c, ok := byName[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return c, nil
	}
	return Off, fmt.Errorf("unknown command %q", name)
}

// All returns every defined command in identifier order
func All() []Command {
	all := make([]Command, Count)
	for i := range all {
		all[i] = Command(i)
	}
	return all
}

// InGroup returns all commands touching the given capability group
func InGroup(g Group) []Command {
	var cmds []Command
	for i, d := range descriptors {
		if d.Group == g {
			cmds = append(cmds, Command(i))
		}
	}
	return cmds
}
