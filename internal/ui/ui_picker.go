package ui

import (
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-datepicker/internal/calendar"
	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/picker"
)

// PickerDialog renders a picker.Controller as a modal dialog. Every handler
// forwards to the controller and redraws from its state.
type PickerDialog struct {
	ctrl    *picker.Controller
	dialog  dialog.Dialog
	compact bool

	titleBar *fyne.Container
	title    *widget.Label
	editBtn  *widget.Button

	navRow    *fyne.Container
	headerBtn *widget.Button
	prevBtn   *widget.Button
	nextBtn   *widget.Button

	calendarView *fyne.Container
	weekdays     []*widget.Label
	days         []*widget.Button

	yearScroll *container.Scroll
	years      []*widget.Button

	textView *fyne.Container
	entry    *DateEntry
	errLabel *widget.Label
	syncing  bool // set while the entry text is changed programmatically

	cancelBtn  *widget.Button
	confirmBtn *widget.Button
}

// NewPickerDialog builds the dialog for ctrl over parent. In compact mode the
// title bar is hidden and the year grid is shorter.
func NewPickerDialog(ctrl *picker.Controller, parent fyne.Window, compact bool) *PickerDialog {
	p := &PickerDialog{ctrl: ctrl, compact: compact}
	labels := ctrl.Labels()

	// --- Title ---
	p.title = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	p.editBtn = widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), p.onToggleEdit)
	p.editBtn.Importance = widget.LowImportance
	p.titleBar = container.NewBorder(nil, widget.NewSeparator(), nil, p.editBtn, p.title)
	if compact {
		p.titleBar.Hide()
	}

	// --- Navigation ---
	p.headerBtn = widget.NewButtonWithIcon("", theme.MenuDropDownIcon(), p.onToggleYears)
	p.headerBtn.IconPlacement = widget.ButtonIconTrailingText
	p.headerBtn.Importance = widget.LowImportance
	p.prevBtn = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), p.onPrevious)
	p.prevBtn.Importance = widget.LowImportance
	p.nextBtn = widget.NewButtonWithIcon("", theme.NavigateNextIcon(), p.onNext)
	p.nextBtn.Importance = widget.LowImportance
	p.navRow = container.NewBorder(nil, nil, p.headerBtn, container.NewHBox(p.prevBtn, p.nextBtn))

	// --- Day grid ---
	weekdayRow := container.NewGridWithColumns(config.DaysPerWeek)
	for _, name := range ctrl.WeekdayLabels() {
		l := widget.NewLabelWithStyle(name, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
		p.weekdays = append(p.weekdays, l)
		weekdayRow.Add(l)
	}

	// Blank cells stay visible so the grid layout keeps every column.
	dayGrid := container.NewGridWithColumns(config.DaysPerWeek)
	p.days = make([]*widget.Button, calendar.SlotCount)
	for i := range p.days {
		p.days[i] = widget.NewButton("", func() { p.onTapSlot(i) })
		dayGrid.Add(p.days[i])
	}
	p.calendarView = container.NewVBox(weekdayRow, dayGrid)

	// --- Year grid ---
	yearGrid := container.NewGridWithColumns(config.YearGridColumns)
	for _, ys := range ctrl.YearGrid() {
		year := ys.Year
		b := widget.NewButton(strconv.Itoa(year), func() { p.onSelectYear(year) })
		p.years = append(p.years, b)
		yearGrid.Add(b)
	}
	height := float32(config.YearGridHeight)
	if compact {
		height = config.YearGridHeightSm
	}
	p.yearScroll = container.NewVScroll(yearGrid)
	p.yearScroll.SetMinSize(fyne.NewSize(config.DialogMinWidth, height))

	// --- Text entry ---
	p.entry = NewDateEntry(ctrl.TextFieldPattern())
	p.entry.PlaceHolder = ctrl.TextFieldPattern()
	p.entry.OnChanged = p.onEditText
	p.entry.OnSubmitted = func(string) { p.onConfirm() }
	p.errLabel = widget.NewLabel(labels.Error)
	p.errLabel.Importance = widget.DangerImportance
	p.errLabel.Hide()
	p.textView = container.NewVBox(widget.NewLabel(labels.Label), p.entry, p.errLabel)

	// --- Actions ---
	p.cancelBtn = widget.NewButton(labels.Cancel, p.onCancel)
	p.confirmBtn = widget.NewButton(labels.Confirm, p.onConfirm)
	p.confirmBtn.Importance = widget.HighImportance
	buttons := container.NewHBox(layout.NewSpacer(), p.cancelBtn, p.confirmBtn)

	content := container.NewVBox(
		p.titleBar,
		p.navRow,
		container.NewStack(p.calendarView, p.yearScroll, p.textView),
		buttons,
	)

	title := ctrl.Locale().MsgOr(config.TKeyDialogTitle, "")
	p.dialog = dialog.NewCustomWithoutButtons(title, content, parent)
	p.dialog.SetOnClosed(p.onClosed)

	p.refresh()
	return p
}

// Show displays the dialog.
func (p *PickerDialog) Show() {
	slog.Info(config.MsgDialogShown,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyDate, p.ctrl.Selection().String(),
		config.LogKeyValue, p.compact,
	)
	p.dialog.Show()
}

// refresh redraws every widget from the controller state.
func (p *PickerDialog) refresh() {
	mode := p.ctrl.Mode()

	p.title.SetText(p.ctrl.Title())
	if mode == picker.TextEntry {
		p.editBtn.SetIcon(theme.GridIcon())
	} else {
		p.editBtn.SetIcon(theme.DocumentCreateIcon())
	}

	p.headerBtn.SetText(p.ctrl.Header())
	if mode == picker.YearPicker {
		p.headerBtn.SetIcon(theme.MenuDropUpIcon())
		p.prevBtn.Disable()
		p.nextBtn.Disable()
	} else {
		p.headerBtn.SetIcon(theme.MenuDropDownIcon())
		setEnabled(p.prevBtn, p.ctrl.Page() > 0)
		setEnabled(p.nextBtn, p.ctrl.Page() < p.ctrl.PageCount()-1)
	}

	switch mode {
	case picker.Calendar:
		p.navRow.Show()
		p.calendarView.Show()
		p.yearScroll.Hide()
		p.textView.Hide()
		p.refreshDays()
	case picker.YearPicker:
		p.navRow.Show()
		p.calendarView.Hide()
		p.yearScroll.Show()
		p.textView.Hide()
		p.refreshYears()
	case picker.TextEntry:
		p.navRow.Hide()
		p.calendarView.Hide()
		p.yearScroll.Hide()
		p.textView.Show()
		if p.ctrl.TextField().Valid() {
			p.errLabel.Hide()
		} else {
			p.errLabel.Show()
		}
	}
}

func (p *PickerDialog) refreshDays() {
	for i, slot := range p.ctrl.Grid() {
		b := p.days[i]
		switch s := slot.(type) {
		case calendar.Day:
			b.SetText(strconv.Itoa(s.Number()))
			b.Enable()
			switch {
			case s.Selected:
				b.Importance = widget.HighImportance
			case s.Today:
				b.Importance = widget.MediumImportance
			default:
				b.Importance = widget.LowImportance
			}
		default:
			b.SetText("")
			b.Importance = widget.LowImportance
			b.Disable()
		}
		b.Refresh()
	}
}

func (p *PickerDialog) refreshYears() {
	for i, ys := range p.ctrl.YearGrid() {
		if ys.Selected {
			p.years[i].Importance = widget.HighImportance
		} else {
			p.years[i].Importance = widget.LowImportance
		}
		p.years[i].Refresh()
	}
}

// scrollToSelectedYear centres the selected year in the year grid.
func (p *PickerDialog) scrollToSelectedYear() {
	if len(p.years) == 0 {
		return
	}
	idx := p.ctrl.Selection().Year - p.ctrl.YearRange().Min
	row := idx / config.YearGridColumns
	rowHeight := p.years[0].MinSize().Height + theme.Padding()

	y := float32(row)*rowHeight - p.yearScroll.MinSize().Height/2 + rowHeight/2
	if y < 0 {
		y = 0
	}
	p.yearScroll.Offset = fyne.NewPos(0, y)
	p.yearScroll.Refresh()
}

// --- Handlers ---

func (p *PickerDialog) onToggleEdit() {
	if p.check(p.ctrl.ToggleEditMode()) && p.ctrl.Mode() == picker.TextEntry {
		p.setEntryText(p.ctrl.TextField().Raw)
	}
	p.refresh()
}

func (p *PickerDialog) onToggleYears() {
	if p.check(p.ctrl.ToggleYearPicker()) && p.ctrl.Mode() == picker.YearPicker {
		p.scrollToSelectedYear()
	}
	p.refresh()
}

func (p *PickerDialog) onPrevious() {
	_, err := p.ctrl.Previous()
	p.check(err)
	p.refresh()
}

func (p *PickerDialog) onNext() {
	_, err := p.ctrl.Next()
	p.check(err)
	p.refresh()
}

func (p *PickerDialog) onTapSlot(i int) {
	p.check(p.ctrl.TapSlot(i))
	p.refresh()
}

func (p *PickerDialog) onSelectYear(year int) {
	p.check(p.ctrl.SelectYear(year))
	p.refresh()
}

func (p *PickerDialog) onEditText(s string) {
	if p.syncing {
		return
	}
	p.check(p.ctrl.EditText(s))
	p.refresh()
}

func (p *PickerDialog) onConfirm() {
	if p.check(p.ctrl.Confirm()) {
		p.dialog.Hide()
	}
}

func (p *PickerDialog) onCancel() {
	if p.check(p.ctrl.Cancel()) {
		p.dialog.Hide()
	}
}

// onClosed runs on every close. A dialog dismissed without a button cancels.
func (p *PickerDialog) onClosed() {
	if !p.ctrl.Done() {
		p.check(p.ctrl.Cancel())
	}
}

func (p *PickerDialog) setEntryText(s string) {
	p.syncing = true
	p.entry.SetText(s)
	p.syncing = false
}

// check logs a rejected controller action and reports whether err was nil.
func (p *PickerDialog) check(err error) bool {
	if err == nil {
		return true
	}
	slog.Debug(config.MsgActionIgnored,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyMode, p.ctrl.Mode().String(),
		config.LogKeyError, err,
	)
	return false
}

func setEnabled(w fyne.Disableable, enabled bool) {
	if enabled {
		w.Enable()
	} else {
		w.Disable()
	}
}
