package mmtext

import "strings"

// Entry is one key/value line of a section.
type Entry struct {
	Key   string
	Value string
}

// Section is a named group of entries, in file order.
type Section struct {
	Name    string
	Entries []Entry
}

// Set assigns value to key, replacing an existing entry in place.
// Keys are case-insensitive and stored lower-cased.
func (s *Section) Set(key, value string) {
	key = strings.ToLower(key)
	for i := range s.Entries {
		if s.Entries[i].Key == key {
			s.Entries[i].Value = value
			return
		}
	}
	s.Entries = append(s.Entries, Entry{Key: key, Value: value})
}

// Get returns the value of key.
func (s *Section) Get(key string) (string, bool) {
	key = strings.ToLower(key)
	for _, e := range s.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// Document is an ordered list of sections.
type Document struct {
	Sections []*Section
}

// AddSection appends a new empty section. Section names are case-sensitive.
func (d *Document) AddSection(name string) (*Section, error) {
	if _, ok := d.Section(name); ok {
		return nil, ErrDuplicateSection
	}
	s := &Section{Name: name}
	d.Sections = append(d.Sections, s)
	return s, nil
}

// Section looks up a section by name.
func (d *Document) Section(name string) (*Section, bool) {
	for _, s := range d.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Names returns the section names in document order.
func (d *Document) Names() []string {
	names := make([]string, len(d.Sections))
	for i, s := range d.Sections {
		names[i] = s.Name
	}
	return names
}
