package utils

import "fmt"

// NameFactory produces output file stems: root, root_(1), root_(2), ...
type NameFactory struct {
	root  string
	count int
}

func NewNameFactory(root string) *NameFactory {
	return &NameFactory{root: root}
}

// Next returns the next stem in the sequence
func (f *NameFactory) Next() string {
	name := f.root
	if f.count > 0 {
		name = fmt.Sprintf("%s_(%d)", f.root, f.count)
	}
	f.count++
	return name
}
