package pipeline

import (
	"context"

	"github.com/havlicek/easybook/internal/tables"
)

// TableDecorator defines the contract for the table decoration stage.
type TableDecorator interface {
	DecorateTables(ctx context.Context, in tables.Input) (tables.Output, error)
}

// TableDecoration binds the collaborators of tables.Decorate.
type TableDecoration struct {
	Render  tables.RenderFunc
	Label   tables.LabelFunc
	Slugify tables.SlugFunc
}

// DecorateTables numbers, labels and renders the tables of in.Content.
// Collaborator errors are returned unchanged.
func (d *TableDecoration) DecorateTables(ctx context.Context, in tables.Input) (tables.Output, error) {
	if err := ctx.Err(); err != nil {
		return tables.Output{}, err
	}
	return tables.Decorate(in, d.Render, d.Label, d.Slugify)
}
