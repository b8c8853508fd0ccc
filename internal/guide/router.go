package guide

// Section is one of the three educational panels.
type Section int

const (
	Architecture Section = iota
	SchemaInstance
	Advantages
)

var Sections = []Section{Architecture, SchemaInstance, Advantages}

func (s Section) String() string {
	switch s {
	case Architecture:
		return "architecture"
	case SchemaInstance:
		return "schema"
	case Advantages:
		return "advantages"
	}
	return "unknown"
}

// Label is the navbar text.
func (s Section) Label() string {
	switch s {
	case Architecture:
		return "3-Schema Architecture"
	case SchemaInstance:
		return "Schema vs. Instance"
	case Advantages:
		return "DBMS Advantages"
	}
	return ""
}

// ParseSection maps a section name back to its value. Unknown names fall
// back to Architecture.
func ParseSection(name string) Section {
	for _, s := range Sections {
		if s.String() == name {
			return s
		}
	}
	return Architecture
}

// Router tracks the active section. The zero value shows Architecture.
type Router struct {
	active Section
}

func (r *Router) Active() Section { return r.active }

// Set switches to s; values outside the three sections are ignored.
func (r *Router) Set(s Section) {
	if s < Architecture || s > Advantages {
		return
	}
	r.active = s
}

func (r *Router) Next() { r.active = (r.active + 1) % Section(len(Sections)) }

func (r *Router) Prev() {
	r.active = (r.active + Section(len(Sections)) - 1) % Section(len(Sections))
}
