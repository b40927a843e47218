// Package ledger records judged hands in an append-only history with hash
// chaining for tamper detection.
//
// # Core Components
//
// History: An append-only log of judged hands. Every block stores the hash
// of the previous one.
//
// Block: A single judged hand with its timestamp and cryptographic link to
// the previous block.
//
// # Usage
//
// Create a history, then append a record for each hand once the Judger has
// settled it. The Verify method can be called at any time to ensure the
// chain remains intact, and WriteJSONLines exports one line per hand for
// offline analysis.
package ledger
