// Package flow reads and writes navigation flow documents.
//
// # Overview
//
// A flow document describes a navigation setup in one file: the initial
// tree, the catalog of scenes actions can bring in, an optional action
// vocabulary and an optional script of steps to replay. Documents are TOML
// or JSON; the format follows the file extension.
//
// # TOML Format
//
//	name = "mail"
//
//	[vocabulary]
//	open = "PUSH"
//
//	[root]
//	key = "tabs"
//	tabs = true
//
//	[[root.children]]
//	key = "inbox"
//	hide_nav_bar = false
//
//	[[root.children.children]]
//	key = "list"
//	title = "Inbox"
//
//	[scenes.detail]
//	title = "Message"
//	direction = "vertical"
//
//	[[steps]]
//	type = "open"
//	key = "detail"
//
// Scene templates take their key from the table name when they leave it
// unset.
//
// # Validation
//
// [Read] and [Load] reject documents whose root breaks the tree invariants
// checked by nav.Validate, and catalog entries with invalid keys. Errors
// carry the INVALID_FORMAT code.
package flow
