package guide

// Form fields in tab order.
const (
	FieldID = iota
	FieldName
	FieldMajor
	FormFields
)

// FormLabels are the input placeholders.
var FormLabels = [FormFields]string{"Student ID (e.g., 104)", "Full Name", "Major"}

// Form is the editing state of the add-student form. The zero value is
// idle; call Begin to start typing.
type Form struct {
	Values [FormFields]string
	Err    error
	Notice string
	focus  int // field index plus one; 0 while idle
}

// Active reports whether a field has focus.
func (f *Form) Active() bool { return f.focus > 0 }

// Focus returns the focused field, or -1 while idle.
func (f *Form) Focus() int { return f.focus - 1 }

func (f *Form) Begin() {
	f.focus = FieldID + 1
	f.Notice = ""
}

// FocusOn moves focus to field i, starting the form if it was idle.
func (f *Form) FocusOn(i int) {
	if i < 0 || i >= FormFields {
		return
	}
	if !f.Active() {
		f.Notice = ""
	}
	f.focus = i + 1
}

// Cancel leaves the form and keeps what was typed.
func (f *Form) Cancel() { f.focus = 0 }

func (f *Form) Next() {
	if f.Active() {
		f.focus = f.focus%FormFields + 1
	}
}

func (f *Form) Prev() {
	if f.Active() {
		f.focus = (f.focus+FormFields-2)%FormFields + 1
	}
}

// Type appends s to the focused field.
func (f *Form) Type(s string) {
	if f.Active() {
		f.Values[f.Focus()] += s
	}
}

func (f *Form) Backspace() {
	if !f.Active() {
		return
	}
	v := []rune(f.Values[f.Focus()])
	if len(v) > 0 {
		f.Values[f.Focus()] = string(v[:len(v)-1])
	}
}

// Submit adds the typed student to r. On success the form clears and goes
// idle; on failure Err holds the reason and the typed values stay.
func (f *Form) Submit(r *Roster) (Student, error) {
	s, err := r.Add(StudentForm{
		ID:    f.Values[FieldID],
		Name:  f.Values[FieldName],
		Major: f.Values[FieldMajor],
	})
	f.Err = err
	if err != nil {
		return Student{}, err
	}
	f.Values = [FormFields]string{}
	f.focus = 0
	f.Notice = "Added " + s.Name
	return s, nil
}
