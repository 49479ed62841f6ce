// Package ui renders CLI text: semantic formatters for paths, flags and
// values, plus status lines that start with a symbol.
//
//	ui.SuccessLine("Exported 3 profile(s) to ", ui.Path.Sprint(dir))
//	ui.ErrorLine("No valid profiles found")
//	ui.HintLine("Run ", ui.Code.Sprint("flashforge-profile-cli config init"))
//
// Color is dropped when NO_COLOR is set or stdout is not a color terminal.
// Formatters then fall back to plain decorations: Code uses `backticks`,
// Highlight uses 'quotes' and Muted uses (parentheses).
package ui
