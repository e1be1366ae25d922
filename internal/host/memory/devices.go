package memory

import "github.com/PixPMusic/gopher-flexi/internal/host"

// Device is one plugin in the chain with pages of parameters
type Device struct {
	Name        string
	Win, On, Ex Flag
	Banks       [][paramsInBank]*Param
}

// NewDevice creates an enabled device with the given number of parameter pages
func NewDevice(name string, banks int) *Device {
	d := &Device{Name: name, On: Flag{On: true}}
	for b := 0; b < banks; b++ {
		var page [paramsInBank]*Param
		for i := range page {
			page[i] = NewParam(0)
		}
		d.Banks = append(d.Banks, page)
	}
	return d
}

// DeviceChain implements host.Device as a cursor over a list of devices
type DeviceChain struct {
	List   []*Device
	Cursor int
	Bank   int
}

func newDeviceChain() *DeviceChain {
	return &DeviceChain{}
}

func (c *DeviceChain) current() *Device {
	if c.Cursor < 0 || c.Cursor >= len(c.List) {
		return nil
	}
	return c.List[c.Cursor]
}

func (c *DeviceChain) Exists() bool { return c.current() != nil }

func (c *DeviceChain) Window() host.Bool {
	if d := c.current(); d != nil {
		return &d.Win
	}
	return nil
}

func (c *DeviceChain) Enabled() host.Bool {
	if d := c.current(); d != nil {
		return &d.On
	}
	return nil
}

func (c *DeviceChain) Expanded() host.Bool {
	if d := c.current(); d != nil {
		return &d.Ex
	}
	return nil
}

func (c *DeviceChain) SelectPrevious() {
	if c.Cursor > 0 {
		c.Cursor--
		c.Bank = 0
	}
}

func (c *DeviceChain) SelectNext() {
	if c.Cursor < len(c.List)-1 {
		c.Cursor++
		c.Bank = 0
	}
}

func (c *DeviceChain) SelectPreviousParameterBank() {
	if c.Bank > 0 {
		c.Bank--
	}
}

func (c *DeviceChain) SelectNextParameterBank() {
	if d := c.current(); d != nil && c.Bank < len(d.Banks)-1 {
		c.Bank++
	}
}

func (c *DeviceChain) Parameter(i int) host.Parameter {
	d := c.current()
	if d == nil || c.Bank >= len(d.Banks) || i < 0 || i >= paramsInBank {
		return nil
	}
	return d.Banks[c.Bank][i]
}

// Browser implements host.Browser
type Browser struct {
	IsActive  bool
	Insert    int // -1 before, 1 after, 0 replace presets
	Filters   [6]int
	Result    int
	Tab       int
	Committed int
}

func (b *Browser) Active() bool { return b.IsActive }

func (b *Browser) BrowsePresets()       { b.open(0) }
func (b *Browser) InsertBeforeCurrent() { b.open(-1) }
func (b *Browser) InsertAfterCurrent()  { b.open(1) }

func (b *Browser) open(insert int) {
	b.IsActive = true
	b.Insert = insert
	b.Result = 0
}

func (b *Browser) Commit() {
	if b.IsActive {
		b.Committed++
		b.IsActive = false
	}
}

func (b *Browser) Cancel() { b.IsActive = false }

func (b *Browser) SelectPreviousFilter(column int) {
	if column >= 0 && column < len(b.Filters) && b.Filters[column] > 0 {
		b.Filters[column]--
	}
}

func (b *Browser) SelectNextFilter(column int) {
	if column >= 0 && column < len(b.Filters) {
		b.Filters[column]++
	}
}

func (b *Browser) ResetFilter(column int) {
	if column >= 0 && column < len(b.Filters) {
		b.Filters[column] = 0
	}
}

func (b *Browser) SelectPreviousResult() {
	if b.Result > 0 {
		b.Result--
	}
}

func (b *Browser) SelectNextResult() { b.Result++ }

func (b *Browser) SelectPreviousTab() {
	if b.Tab > 0 {
		b.Tab--
	}
}

func (b *Browser) SelectNextTab() { b.Tab++ }
