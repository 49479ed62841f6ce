// Package logger provides leveled logging for flashforge-profile-cli commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is prefixed and colored with fatih/color.
//
// # Verbosity Levels
//
//   - --verbose: shows info messages
//   - --debug: shows info and debug messages
//
// Warnings and errors are always shown on stderr.
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Exporting %d profiles", count)
//
// The root command creates the logger in its PersistentPreRun.
package logger
