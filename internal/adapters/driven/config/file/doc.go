// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem under ~/.foodiespot.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//   - PromptStore: editable prompt templates with live reload
package file
