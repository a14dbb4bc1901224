// Package ui provides semantic text formatting for CLI output.
//
// When colors are available, content is colorized. When NO_COLOR is set or
// the terminal doesn't support colors, text decorations are used instead:
//
//	ui.Code.Sprint("obslog key <API_KEY>")  // `obslog key <API_KEY>`
//	ui.Path.Sprint("/periodic/daily/")      // /periodic/daily/
//	ui.Success.Sprint("✓")
//	ui.Warning.Sprint("⚠")
//	ui.Error.Sprint("✗")
package ui
