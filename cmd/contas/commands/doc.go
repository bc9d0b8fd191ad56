// Package commands defines the contas CLI and wires the store for subcommands.
//
// Commands
//
//   - add     Register a new account (password prompted, never echoed)
//   - remove  Remove an account by CPF
//   - list    List all accounts
//   - show    Look up one account by CPF, username or id
//   - passwd  Change an account's password
//   - backup  Copy the database file
//
// # Implementation
//
// The root command resolves the database location (--db flag, CONTAS_DB
// environment variable, config.toml, then the config-directory default) and
// opens the store before any subcommand runs.
package commands
