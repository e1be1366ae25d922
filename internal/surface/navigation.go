package surface

import "github.com/PixPMusic/gopher-flexi/internal/host"

// selectedInBank returns the page index of the selected track, or -1 when
// nothing is selected or the selection is scrolled out of view
func selectedInBank(m host.Model, bank host.TrackBank) int {
	sel := m.SelectedTrack()
	if sel == nil {
		return -1
	}
	i := sel.Position() - bank.Position()
	if i < 0 || i >= bank.Size() {
		return -1
	}
	return i
}

func (e *Engine) selectPreviousTrack(switchBank bool) {
	bank := e.model.TrackBank()
	sel := selectedInBank(e.model, bank)
	index := 0
	if sel >= 0 {
		index = sel - 1
	}

	if index == -1 || switchBank {
		if !bank.CanScrollBackwards() {
			return
		}
		bank.ScrollPageBackwards()
		target := sel
		if index == -1 || sel < 0 {
			target = bank.Size() - 1
		}
		e.selectLater(bank, target)
		return
	}
	if t := bank.Track(index); t != nil {
		t.Select()
	}
}

func (e *Engine) selectNextTrack(switchBank bool) {
	bank := e.model.TrackBank()
	sel := selectedInBank(e.model, bank)
	index := 0
	if sel >= 0 {
		index = sel + 1
	}

	if index == bank.Size() || switchBank {
		if !bank.CanScrollForwards() {
			return
		}
		bank.ScrollPageForwards()
		target := sel
		if index == bank.Size() || sel < 0 {
			target = 0
		}
		e.selectLater(bank, target)
		return
	}
	if t := bank.Track(index); t != nil {
		t.Select()
	}
}

// selectLater selects a bank track once the host caught up with the page
// change. The page may have moved again by then, so the index is checked
// against the bank as it is when the task runs.
func (e *Engine) selectLater(bank host.TrackBank, index int) {
	e.after(ButtonRepeatInterval, func() {
		if index < 0 || index >= bank.Size() {
			return
		}
		if t := bank.Track(index); t != nil {
			t.Select()
		}
	})
}
