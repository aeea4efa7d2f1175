// Package cli provides the interactive command-line shell of the user
// registry.
//
// It wires configuration, logging, the JSON record store and the user
// service, then runs a menu loop:
//
//	1. Register user
//	2. Search user
//	3. Delete user
//	4. Exit
//
// The session state (input reader, output writer, service) lives in App and is
// passed explicitly; nothing is global. The same handlers back the
// non-interactive "search <id>" and "delete <id>" subcommands.
package cli
