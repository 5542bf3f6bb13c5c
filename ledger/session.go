package ledger

import (
	"context"
	"time"
)

// FormMode is the mode the transaction form opens in.
type FormMode int

const (
	FormClosed FormMode = iota
	FormAdd
	FormEdit
)

func (f FormMode) String() string {
	switch f {
	case FormClosed:
		return "closed"
	case FormAdd:
		return "add"
	case FormEdit:
		return "edit"
	}
	return "unknown"
}

// Session is the view state of the dashboard: selected month, whether the
// transaction form is open, the transaction being edited and whether a
// clear-all is awaiting confirmation. It holds no ledger data.
//
// The edit workflow is Idle (EditingID empty) -> StartEdit -> Editing(id)
// -> Submit or Cancel -> Idle.
type Session struct {
	Month           int    `json:"month"`
	FormOpen        bool   `json:"form_open"`
	EditingID       string `json:"editing_id,omitempty"`
	ConfirmingClear bool   `json:"confirming_clear"`
}

// NewSession starts on the month of now.
func NewSession(now time.Time) Session {
	return Session{Month: int(now.Month())}
}

// Editing reports whether an edit is in progress.
func (s *Session) Editing() bool {
	return s.EditingID != ""
}

// FormMode derives the form mode from FormOpen and EditingID.
func (s *Session) FormMode() FormMode {
	switch {
	case !s.FormOpen:
		return FormClosed
	case s.Editing():
		return FormEdit
	default:
		return FormAdd
	}
}

// OpenForm opens the transaction form in add or edit mode depending on
// whether an edit is in progress.
func (s *Session) OpenForm() {
	s.FormOpen = true
}

// StartEdit enters Editing for id and opens the form. It returns the draft to
// pre-fill the form with. A stale id leaves the session untouched.
func (s *Session) StartEdit(b *Book, id string) (Draft, bool) {
	t, ok := b.Get(id)
	if !ok {
		return Draft{}, false
	}

	s.EditingID = id
	s.FormOpen = true
	return DraftFrom(t), true
}

// Submit adds r when Idle or commits it over the edited transaction when
// Editing, then returns to Idle with the form closed.
func (s *Session) Submit(ctx context.Context, b *Book, r Record) error {
	id := s.EditingID
	s.Cancel()

	if id == "" {
		_, err := b.Add(ctx, r)
		return err
	}

	_, err := b.CommitEdit(ctx, id, r)
	return err
}

// Cancel returns to Idle and closes the form without touching data.
func (s *Session) Cancel() {
	s.EditingID = ""
	s.FormOpen = false
}

// RequestClear asks for clear-all confirmation.
func (s *Session) RequestClear() {
	s.ConfirmingClear = true
}

// CancelClear drops a pending clear-all request.
func (s *Session) CancelClear() {
	s.ConfirmingClear = false
}

// ConfirmClear clears the book if a clear-all was requested. Any edit in
// progress is abandoned since its transaction no longer exists.
func (s *Session) ConfirmClear(ctx context.Context, b *Book) (bool, error) {
	requested := s.ConfirmingClear
	s.ConfirmingClear = false

	cleared, err := b.ClearAll(ctx, func() bool { return requested })
	if cleared {
		s.Cancel()
	}

	return cleared, err
}

// SetMonth selects month; values outside 1-12 are ignored.
func (s *Session) SetMonth(month int) {
	if month < 1 || month > 12 {
		return
	}
	s.Month = month
}

// NextMonth moves to the following month, wrapping December to January.
func (s *Session) NextMonth() {
	s.Month = s.Month%12 + 1
}

// PreviousMonth moves to the preceding month, wrapping January to December.
func (s *Session) PreviousMonth() {
	s.Month = (s.Month+10)%12 + 1
}

// MonthName returns the English name of the selected month.
func (s *Session) MonthName() string {
	if s.Month < 1 || s.Month > 12 {
		return ""
	}
	return time.Month(s.Month).String()
}
