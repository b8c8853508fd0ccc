package guide_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dbmsviz/internal/guide"
)

var _ = Describe("Router", func() {
	It("starts on the architecture panel", func() {
		var r guide.Router
		Expect(r.Active()).To(Equal(guide.Architecture))
	})

	It("cycles through the three sections in both directions", func() {
		var r guide.Router
		r.Next()
		Expect(r.Active()).To(Equal(guide.SchemaInstance))
		r.Next()
		r.Next()
		Expect(r.Active()).To(Equal(guide.Architecture))
		r.Prev()
		Expect(r.Active()).To(Equal(guide.Advantages))
	})

	It("ignores out-of-range sections", func() {
		var r guide.Router
		r.Set(guide.Advantages)
		r.Set(guide.Section(7))
		Expect(r.Active()).To(Equal(guide.Advantages))
	})

	DescribeTable("section names round-trip",
		func(s guide.Section) {
			Expect(guide.ParseSection(s.String())).To(Equal(s))
			Expect(s.Label()).NotTo(BeEmpty())
		},
		Entry("architecture", guide.Architecture),
		Entry("schema", guide.SchemaInstance),
		Entry("advantages", guide.Advantages),
	)
})

var _ = Describe("LevelSelector", func() {
	It("defaults to the external schema and clamps at the ends", func() {
		var l guide.LevelSelector
		Expect(l.Active().ID).To(Equal("external"))
		l.Prev()
		Expect(l.Active().ID).To(Equal("external"))
		l.Next()
		l.Next()
		l.Next()
		Expect(l.Active().ID).To(Equal("internal"))
	})

	It("selects by id", func() {
		var l guide.LevelSelector
		Expect(l.Select("conceptual")).To(BeTrue())
		Expect(l.Active().Title).To(Equal("Conceptual Schema"))
		Expect(l.Select("physical")).To(BeFalse())
		Expect(l.Active().ID).To(Equal("conceptual"))
	})
})

var _ = Describe("Accordion", func() {
	var a *guide.Accordion

	BeforeEach(func() {
		a = guide.NewAccordion()
	})

	It("opens with the first card expanded", func() {
		id, open := a.Expanded()
		Expect(open).To(BeTrue())
		Expect(id).To(Equal(1))
	})

	It("keeps at most one card expanded", func() {
		a.Toggle(4)
		Expect(a.IsExpanded(4)).To(BeTrue())
		Expect(a.IsExpanded(1)).To(BeFalse())
	})

	It("collapses the expanded card when toggled again", func() {
		a.Toggle(1)
		_, open := a.Expanded()
		Expect(open).To(BeFalse())
	})

	It("toggles the card under the cursor", func() {
		a.Down()
		a.Down()
		a.ToggleCursor()
		Expect(a.IsExpanded(3)).To(BeTrue())
		for range 10 {
			a.Down()
		}
		Expect(a.Cursor()).To(Equal(len(guide.AdvantageList) - 1))
	})

	It("covers six advantages", func() {
		Expect(guide.AdvantageList).To(HaveLen(6))
	})
})

var _ = Describe("Roster", func() {
	var r *guide.Roster

	BeforeEach(func() {
		r = guide.NewRoster()
	})

	It("is seeded with three students", func() {
		Expect(r.Students()).To(HaveLen(3))
		Expect(r.Students()[0].Name).To(Equal("Alice Johnson"))
	})

	It("appends a valid student", func() {
		s, err := r.Add(guide.StudentForm{ID: " 104 ", Name: "Dana Scully", Major: "Forensics"})
		Expect(err).NotTo(HaveOccurred())
		Expect(s.ID).To(Equal(104))
		Expect(r.Len()).To(Equal(4))
		Expect(r.Students()[3]).To(Equal(s))
	})

	DescribeTable("rejects invalid forms without mutating the roster",
		func(f guide.StudentForm, want error, msg string) {
			_, err := r.Add(f)
			Expect(errors.Is(err, want)).To(BeTrue())
			Expect(guide.Message(err)).To(Equal(msg))
			Expect(r.Len()).To(Equal(3))
		},
		Entry("missing id", guide.StudentForm{Name: "A", Major: "B"}, guide.ErrMissingField, "All fields are required."),
		Entry("blank name", guide.StudentForm{ID: "5", Name: "  ", Major: "B"}, guide.ErrMissingField, "All fields are required."),
		Entry("non-numeric id", guide.StudentForm{ID: "abc", Name: "A", Major: "B"}, guide.ErrNonNumericID, "ID must be a number."),
		Entry("duplicate id", guide.StudentForm{ID: "102", Name: "A", Major: "B"}, guide.ErrDuplicateID, "A student with this ID already exists."),
	)

	It("reports missing fields before a bad id", func() {
		_, err := r.Add(guide.StudentForm{ID: "abc"})
		Expect(err).To(MatchError(guide.ErrMissingField))
	})

	It("does not expose its backing slice", func() {
		r.Students()[0].Name = "changed"
		Expect(r.Students()[0].Name).To(Equal("Alice Johnson"))
	})

	It("has no message for a nil error", func() {
		Expect(guide.Message(nil)).To(BeEmpty())
	})
})

var _ = Describe("Form", func() {
	var (
		f guide.Form
		r *guide.Roster
	)

	BeforeEach(func() {
		f = guide.Form{}
		r = guide.NewRoster()
	})

	It("is idle until begun", func() {
		Expect(f.Active()).To(BeFalse())
		Expect(f.Focus()).To(Equal(-1))
		f.Type("x")
		Expect(f.Values[guide.FieldID]).To(BeEmpty())

		f.Begin()
		Expect(f.Focus()).To(Equal(guide.FieldID))
	})

	It("cycles focus through the fields", func() {
		f.Begin()
		f.Next()
		Expect(f.Focus()).To(Equal(guide.FieldName))
		f.Next()
		f.Next()
		Expect(f.Focus()).To(Equal(guide.FieldID))
		f.Prev()
		Expect(f.Focus()).To(Equal(guide.FieldMajor))
	})

	It("focuses a field directly", func() {
		f.FocusOn(guide.FieldMajor)
		Expect(f.Active()).To(BeTrue())
		Expect(f.Focus()).To(Equal(guide.FieldMajor))
		f.FocusOn(guide.FormFields)
		Expect(f.Focus()).To(Equal(guide.FieldMajor))
	})

	It("edits the focused field", func() {
		f.Begin()
		f.Type("10")
		f.Type("5")
		f.Backspace()
		f.Next()
		f.Type("Zoë")
		f.Backspace()
		Expect(f.Values[guide.FieldID]).To(Equal("10"))
		Expect(f.Values[guide.FieldName]).To(Equal("Zo"))
	})

	It("clears and goes idle after a successful submit", func() {
		f.Begin()
		f.Type("104")
		f.Next()
		f.Type("Dana")
		f.Next()
		f.Type("Physics")

		s, err := f.Submit(r)
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal(guide.Student{ID: 104, Name: "Dana", Major: "Physics"}))
		Expect(f.Active()).To(BeFalse())
		Expect(f.Values).To(Equal([guide.FormFields]string{}))
		Expect(f.Notice).To(Equal("Added Dana"))
		Expect(r.Len()).To(Equal(4))
	})

	It("keeps the typed values when validation fails", func() {
		f.Begin()
		f.Type("abc")
		f.Next()
		f.Type("Eve")
		f.Next()
		f.Type("Law")

		_, err := f.Submit(r)
		Expect(errors.Is(err, guide.ErrNonNumericID)).To(BeTrue())
		Expect(f.Err).To(MatchError(guide.ErrNonNumericID))
		Expect(f.Active()).To(BeTrue())
		Expect(f.Values[guide.FieldID]).To(Equal("abc"))
		Expect(r.Len()).To(Equal(3))
	})

	It("keeps values across cancel", func() {
		f.Begin()
		f.Type("7")
		f.Cancel()
		Expect(f.Active()).To(BeFalse())
		Expect(f.Values[guide.FieldID]).To(Equal("7"))
	})
})
