// Package sitekit loads the source assets of a static site: reusable
// components discovered by walking a directory tree, and page files that
// produce generated assets such as stylesheets and scripts.
//
// # Quick Start
//
// Create a site, load its components, and render one:
//
//	site := sitekit.NewSite(
//	    sitekit.WithReader(sitekit.NewOSReader("src")),
//	    sitekit.WithData(map[string]any{"siteName": "Docs"}),
//	)
//	if err := site.LoadComponents(ctx, "_components"); err != nil {
//	    log.Fatal(err)
//	}
//	html, err := site.Render("ui.card", map[string]any{"title": "Hello"})
//
// # Components
//
// Every file under the component root whose format has a component parser and
// at least one engine becomes a Component. Names are case-insensitive and
// nested directories become nested namespaces, so "ui/Card.html" is found as
// "ui.card". Entries starting with "." or "_" and symbolic links are skipped.
//
// A component file is parsed into a ComponentFile:
//
//	---
//	name: Card          # optional, defaults to the file name
//	css: .card { padding: 1rem }
//	inheritData: false  # optional, defaults to true
//	---
//	<div class="card">{{ .title }}</div>
//
// Rendering pipes the content through the format's engines in order. Each
// engine receives the props merged over the owning Directory's Data, which is
// read on every render: changing Data after loading changes later output.
//
// # Pages
//
// PageLoader turns a single file into a Page whose Path drops the format
// extension and whose BaseData holds the parsed content. Site.LoadPages walks a
// tree and loads every page-eligible file; Site.RenderAsset runs a page through
// its format's engines (minification, TypeScript compilation).
//
// # Formats
//
// Formats maps extensions to parsers and engines. DefaultFormats registers
// Markdown, HTML, YAML and JSON components plus CSS, JS, SVG and TypeScript
// assets; custom formats are added with Formats.Set. Lookup picks the longest
// matching extension, so "app.css.src" can have its own format.
//
// # Readers
//
// Loaders perform all I/O through a Reader. FSReader works over any go-billy
// filesystem: NewOSReader for disk, memfs for tests and generated trees.
package sitekit
