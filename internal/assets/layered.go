package assets

import "fmt"

// Layered looks up each template file in a stack of sources. The first
// source holding a file wins, so a theme directory can override a single
// template of a set and inherit the rest from the embedded defaults.
type Layered struct {
	sources []*Source
}

// NewLayered stacks a directory source above the embedded one. An empty
// basePath yields the embedded source alone.
func NewLayered(basePath string) (*Layered, error) {
	l := &Layered{}
	if basePath != "" {
		dir, err := Dir(basePath)
		if err != nil {
			return nil, err
		}
		l.sources = append(l.sources, dir)
	}
	l.sources = append(l.sources, Embedded())
	return l, nil
}

// Sources returns the source labels from highest to lowest priority.
func (l *Layered) Sources() []string {
	out := make([]string, len(l.sources))
	for i, s := range l.sources {
		out[i] = s.String()
	}
	return out
}

// LoadTemplateSet merges the set across sources. The set is not found only
// when no source has a directory for it.
func (l *Layered) LoadTemplateSet(name string) (*TemplateSet, error) {
	merged := make(map[string]string, len(setFiles))
	found := false
	for _, s := range l.sources {
		files, ok, err := s.readSet(name)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		found = true
		for f, content := range files {
			if _, seen := merged[f]; !seen {
				merged[f] = content
			}
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrTemplateSetNotFound, name)
	}
	return buildSet(name, merged)
}

var _ Loader = (*Layered)(nil)
