// Package assets provides the HTML templates used to publish book items.
//
// A template set lives in templates/{set}/ and holds three files:
//
//	table.html           decoration of one table
//	list-of-tables.html  list of tables page
//	page.html            standalone page around an item
//
// Sets come from a Source: the embedded one compiled into the binary, or a
// directory on disk. Layered stacks a directory over the embedded source and
// resolves each file separately, so a theme may ship only the files it
// changes.
//
// Set names may not contain separators or dots, and directory sources refuse
// set directories that resolve outside their root.
package assets
