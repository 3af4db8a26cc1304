// Package commands defines the baseconv CLI and wires dependencies for subcommands.
//
// Commands
//
//   - bases       List the supported bases
//   - validate    Check that a numeral only uses digits of a base
//   - convert     Convert a numeral between bases
//   - state       Show the saved widget state
//   - set         Edit the saved value and bases
//   - run         Convert the saved value
//   - swap        Swap bases and move the result into the value
//   - copy        Copy the saved result to the clipboard
//
// # Implementation
//
// The root command reads BASECONV_* configuration, applies flag overrides
// and builds the dependency graph (state store, clipboard, services, remote
// client) before any subcommand runs. The widget commands persist state under
// --home so consecutive invocations behave like one open converter.
package commands
