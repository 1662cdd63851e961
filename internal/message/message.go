package message

// ErrMsg carries an error across component boundaries to the app, which
// surfaces it as a toast.
type ErrMsg struct{ Err error }

func (e ErrMsg) Error() string { return e.Err.Error() }
