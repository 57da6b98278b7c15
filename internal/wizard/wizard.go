package wizard

import (
	"context"
	"fmt"
	"time"

	"github.com/sahelnejat/Luna/internal/catalog"
	"github.com/sahelnejat/Luna/internal/timezone"
)

// State of the booking wizard. The five entry states advance and retreat
// linearly; the submission states are reached only through Submit.
type State int

const (
	SelectingServices State = iota
	SelectingDateTime
	SelectingStylist
	EnteringDetails
	Reviewing
	Submitting
	Confirmed
	SubmissionFailed
)

func (s State) String() string {
	switch s {
	case SelectingServices:
		return "selecting_services"
	case SelectingDateTime:
		return "selecting_date_time"
	case SelectingStylist:
		return "selecting_stylist"
	case EnteringDetails:
		return "entering_details"
	case Reviewing:
		return "reviewing"
	case Submitting:
		return "submitting"
	case Confirmed:
		return "confirmed"
	case SubmissionFailed:
		return "submission_failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Submission is the read-only snapshot of a fully gated draft, handed to the
// Submitter when the user confirms.
type Submission struct {
	Services      []SelectedService
	TotalDuration int
	TotalPriceMin string
	Date          time.Time
	Time          string
	Stylist       catalog.Stylist
	Client        ClientInfo
}

// Submitter performs the single outbound booking-creation call. On success
// it returns the reference code issued by the backend.
type Submitter interface {
	Submit(ctx context.Context, s Submission) (string, error)
}

// Wizard drives the multi-step booking flow: one owned draft, strictly
// linear step progression, a single submission at the end.
type Wizard struct {
	state     State
	draft     *Draft
	window    DateWindow
	submitter Submitter
	now       func() time.Time

	reference string
	err       error
}

type Option func(*Wizard)

// WithClock overrides the wizard's notion of "now" (the today-at-midnight
// boundary for date selection).
func WithClock(now func() time.Time) Option {
	return func(w *Wizard) {
		w.now = now
	}
}

func New(submitter Submitter, opts ...Option) *Wizard {
	w := &Wizard{
		state:     SelectingServices,
		draft:     NewDraft(),
		submitter: submitter,
		now:       timezone.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.window = NewDateWindow(w.now())
	return w
}

func (w *Wizard) State() State {
	return w.state
}

func (w *Wizard) Draft() *Draft {
	return w.draft
}

func (w *Wizard) Window() DateWindow {
	return w.window
}

// Reference is the booking reference returned by the backend, set once the
// wizard reaches Confirmed.
func (w *Wizard) Reference() string {
	return w.reference
}

// Err is the last submission error, set while in SubmissionFailed.
func (w *Wizard) Err() error {
	return w.err
}

// ----------------------------------------------------
// Draft mutation
// ----------------------------------------------------

// editable reports whether draft mutation is allowed. Input is locked while
// a submission is in flight so the snapshot cannot race with edits, and
// after confirmation.
func (w *Wizard) editable() bool {
	return w.state != Submitting && w.state != Confirmed
}

func (w *Wizard) AddService(category catalog.ServiceCategory, item catalog.ServiceItem) {
	if !w.editable() {
		return
	}
	w.draft.AddService(category, item)
}

func (w *Wizard) RemoveService(key ServiceKey) {
	if !w.editable() {
		return
	}
	w.draft.RemoveService(key)
}

// SetDate accepts today or any future date. Dates strictly before today at
// midnight are rejected silently; the picker disables them, so a rejected
// call is not an error.
func (w *Wizard) SetDate(date time.Time) {
	if !w.editable() {
		return
	}
	day := timezone.StartOfDay(date)
	today := timezone.StartOfDay(w.now())
	if day.Before(today) {
		return
	}
	w.draft.date = &day
}

// SetTime picks a slot label. The time grid only renders once a date is
// chosen, so a call without a date is dropped.
func (w *Wizard) SetTime(label string) {
	if !w.editable() || w.draft.date == nil {
		return
	}
	w.draft.timeLabel = label
}

func (w *Wizard) SetStylist(stylist catalog.Stylist) {
	if !w.editable() {
		return
	}
	s := stylist
	w.draft.stylist = &s
}

// SetClientField sets one client contact field by its form name. Unknown
// names are ignored.
func (w *Wizard) SetClientField(name, value string) {
	if !w.editable() {
		return
	}
	switch name {
	case "firstName":
		w.draft.client.FirstName = value
	case "lastName":
		w.draft.client.LastName = value
	case "email":
		w.draft.client.Email = value
	case "phone":
		w.draft.client.Phone = value
	case "notes":
		w.draft.client.Notes = value
	}
}

// ----------------------------------------------------
// Date window navigation
// ----------------------------------------------------

func (w *Wizard) NextWeek() {
	if !w.editable() {
		return
	}
	w.window.NextWeek()
}

func (w *Wizard) PrevWeek() bool {
	if !w.editable() {
		return false
	}
	return w.window.PrevWeek(w.now())
}

// ----------------------------------------------------
// Step progression
// ----------------------------------------------------

// CanAdvance is the gate for the current entry state. It is a predicate the
// UI checks to enable "Continue"; an unsatisfied gate is never an error.
func (w *Wizard) CanAdvance() bool {
	switch w.state {
	case SelectingServices:
		return len(w.draft.services) > 0
	case SelectingDateTime:
		return w.draft.date != nil && w.draft.timeLabel != ""
	case SelectingStylist:
		return w.draft.stylist != nil
	case EnteringDetails:
		c := w.draft.client
		return c.FirstName != "" && c.LastName != "" && c.Email != "" && c.Phone != ""
	}
	return false
}

// Advance moves one step forward if the current gate holds; otherwise it is
// a no-op.
func (w *Wizard) Advance() {
	if w.state >= Reviewing {
		return
	}
	if !w.CanAdvance() {
		return
	}
	w.state++
}

// Retreat moves one step back with no validation. It never fails; at the
// first step it is a no-op.
func (w *Wizard) Retreat() {
	if w.state <= SelectingServices || w.state > Reviewing {
		return
	}
	w.state--
}

// ----------------------------------------------------
// Submission
// ----------------------------------------------------

func (w *Wizard) snapshot() Submission {
	totals := w.draft.Totals()
	return Submission{
		Services:      w.draft.Services(),
		TotalDuration: totals.DurationMinutes,
		TotalPriceMin: fmt.Sprintf("$%d+", totals.MinPrice),
		Date:          *w.draft.date,
		Time:          w.draft.timeLabel,
		Stylist:       *w.draft.stylist,
		Client:        w.draft.client,
	}
}

// Submit sends the draft snapshot to the backend. It is only effective from
// Reviewing, which is itself only reachable with every gate satisfied, so a
// submission with missing data cannot be constructed. While the call is in
// flight the wizard is in Submitting and all mutation is locked. On failure
// the draft is kept intact and the user may retry after DismissError; there
// is no automatic retry.
func (w *Wizard) Submit(ctx context.Context) error {
	if w.state != Reviewing {
		return nil
	}

	w.state = Submitting
	w.err = nil

	ref, err := w.submitter.Submit(ctx, w.snapshot())
	if err != nil {
		w.state = SubmissionFailed
		w.err = err
		return err
	}

	w.reference = ref
	w.state = Confirmed
	return nil
}

// DismissError acknowledges a failed submission and returns the wizard to
// Reviewing with all entered data intact.
func (w *Wizard) DismissError() {
	if w.state != SubmissionFailed {
		return
	}
	w.state = Reviewing
	w.err = nil
}

// Reset discards the draft and starts a fresh session.
func (w *Wizard) Reset() {
	w.state = SelectingServices
	w.draft = NewDraft()
	w.window = NewDateWindow(w.now())
	w.reference = ""
	w.err = nil
}
