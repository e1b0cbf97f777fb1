package easybook

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/havlicek/easybook/internal/labels"
)

// Option configures a Publisher.
type Option func(*Publisher)

// publisherConfig holds internal configuration for Publisher.
type publisherConfig struct {
	labelKinds      map[string]bool
	labelFormats    map[string]string
	assetPath       string
	templateSetName string
	workers         int
	allowRawHTML    bool
	typographer     bool
	baseURL         string
	listTitle       string
}

// WithLabels enables labels for the given element kinds, such as "table".
func WithLabels(kinds ...string) Option {
	return func(p *Publisher) {
		for _, k := range kinds {
			p.cfg.labelKinds[strings.ToLower(k)] = true
		}
	}
}

// WithLabelFormat overrides the label format of kind. The format is a
// text/template with .Item and .Element, validated by NewPublisher.
func WithLabelFormat(kind, format string) Option {
	return func(p *Publisher) {
		p.cfg.labelFormats[strings.ToLower(kind)] = format
	}
}

// WithAssetPath loads template sets from a custom directory, falling back
// to the embedded sets.
func WithAssetPath(path string) Option {
	return func(p *Publisher) {
		p.cfg.assetPath = path
	}
}

// WithTemplateSet selects the template set by name.
func WithTemplateSet(name string) Option {
	return func(p *Publisher) {
		p.cfg.templateSetName = name
	}
}

// WithLogger sets the logger. The default logger discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(p *Publisher) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithWorkers bounds the number of items PublishBook processes at once.
// Zero or less selects a value from GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(p *Publisher) {
		p.cfg.workers = n
	}
}

// WithRegistry publishes lists into r instead of a private registry.
func WithRegistry(r *Registry) Option {
	return func(p *Publisher) {
		if r != nil {
			p.registry = r
		}
	}
}

// WithRawHTML keeps raw HTML written in the Markdown source.
func WithRawHTML(allow bool) Option {
	return func(p *Publisher) {
		p.cfg.allowRawHTML = allow
	}
}

// WithTypographer enables smart quotes and dashes in converted text.
func WithTypographer(enable bool) Option {
	return func(p *Publisher) {
		p.cfg.typographer = enable
	}
}

// WithBaseURL rewrites relative image and link paths against url instead
// of file:// URLs under the item's source directory.
func WithBaseURL(url string) Option {
	return func(p *Publisher) {
		p.cfg.baseURL = url
	}
}

// WithListTitle sets the heading of the list of tables.
func WithListTitle(title string) Option {
	return func(p *Publisher) {
		p.cfg.listTitle = title
	}
}

func (c publisherConfig) tableLabels() bool {
	return c.labelKinds[labels.KindTable]
}
