// Package easybook publishes books written in Markdown as HTML, numbering
// and labelling every table and collecting them into a list of tables.
//
// # Quick Start
//
// Create a publisher and publish one item:
//
//	pub, err := easybook.NewPublisher(easybook.WithLabels("table"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := pub.PublishItem(ctx, easybook.Item{
//	    Title:    "Results",
//	    Number:   "3",
//	    Markdown: "| A | B |\n|---|---|\n| 1 | 2 |\n",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Tables[0].Label) // Table 3.1
//
// # Publishing Pipeline
//
// Every item goes through these stages:
//
//  1. Markdown preprocessing (line normalization, ==highlight== syntax)
//  2. Markdown to HTML fragment conversion via Goldmark (GFM, syntax highlighting)
//  3. Relative image and link path rewriting
//  4. Table decoration: each table is numbered, labelled when table labels
//     are enabled, given a slug such as "table-3-1" and rendered with the
//     table template of the active template set
//
// The tables of an item are registered under KeyTables in the publisher's
// Registry, only when the item has at least one table.
//
// # Books
//
// PublishBook publishes items concurrently, bounded by WithWorkers, and
// aggregates results in item order. When the book has tables the result
// carries the rendered list of tables.
//
// # Configuration
//
// Use functional options to customize the publisher:
//
//	pub, err := easybook.NewPublisher(
//	    easybook.WithLabels("table"),
//	    easybook.WithLabelFormat("table", "Tab. {{.Element.Number}}-{{.Item.Number}}"),
//	    easybook.WithAssetPath("/path/to/custom/assets"),
//	    easybook.WithTemplateSet("print"),
//	    easybook.WithWorkers(4),
//	)
package easybook
