package guide

import (
	"errors"
	"slices"
	"strconv"
	"strings"
)

// Form validation errors.
var (
	ErrMissingField = errors.New("guide: missing required field")
	ErrNonNumericID = errors.New("guide: student id is not a number")
	ErrDuplicateID  = errors.New("guide: duplicate student id")
)

// Message is the inline text shown under the form for err.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingField):
		return "All fields are required."
	case errors.Is(err, ErrNonNumericID):
		return "ID must be a number."
	case errors.Is(err, ErrDuplicateID):
		return "A student with this ID already exists."
	}
	return err.Error()
}

// Student is one row of the illustrative Students table.
type Student struct {
	ID    int
	Name  string
	Major string
}

// StudentForm is the raw text of the add-student form.
type StudentForm struct {
	ID    string
	Name  string
	Major string
}

// Roster is the in-memory instance of the Students table.
type Roster struct {
	students []Student
}

// NewRoster returns the roster seeded with the three sample students.
func NewRoster() *Roster {
	return &Roster{students: []Student{
		{ID: 101, Name: "Alice Johnson", Major: "Computer Science"},
		{ID: 102, Name: "Bob Williams", Major: "Data Science"},
		{ID: 103, Name: "Charlie Brown", Major: "Cybersecurity"},
	}}
}

// Students returns a copy of the rows in insertion order.
func (r *Roster) Students() []Student { return slices.Clone(r.students) }

func (r *Roster) Len() int { return len(r.students) }

// Add validates the form and appends the student. Checks run in order:
// required fields, numeric id, unique id.
func (r *Roster) Add(f StudentForm) (Student, error) {
	id, name, major := strings.TrimSpace(f.ID), strings.TrimSpace(f.Name), strings.TrimSpace(f.Major)
	if id == "" || name == "" || major == "" {
		return Student{}, ErrMissingField
	}
	n, err := strconv.Atoi(id)
	if err != nil {
		return Student{}, ErrNonNumericID
	}
	if slices.ContainsFunc(r.students, func(s Student) bool { return s.ID == n }) {
		return Student{}, ErrDuplicateID
	}

	s := Student{ID: n, Name: name, Major: major}
	r.students = append(r.students, s)
	return s, nil
}
