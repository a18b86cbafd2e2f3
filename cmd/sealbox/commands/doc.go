// Package commands defines the sealbox CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - keygen     Generate an RSA-4096 key pair and store it as PEM files
//   - encrypt    Seal a message for a recipient public key
//   - decrypt    Open an envelope with the matching private key
//   - hash       Print the BLAKE3 content fingerprint of data
//   - id         Print a fresh secure random identifier
//   - benchmark  Time engine and queue operations
//   - metrics    Print a JSON status report
//
// # Implementation
//
// The root command builds a shared app context (engine, key store,
// queue) before any subcommand runs.
package commands
