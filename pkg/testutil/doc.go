// Package testutil provides fakes and fixtures for testing qualia
// components without touching the desktop.
//
// Key components:
//   - FakeRunner: scripted external commands with a call log
//   - MemoryStore: in-memory settings store recording every write
//   - ScriptedPrompter: answers configuration questions from a script
//   - FakeExtensions: shell extension gate with fixed state
//   - Reporter: records the messages of an enable pass
//   - FakePaths: every location rooted under one directory
//
// Usage guidelines:
//   - Tests should never shell out to gsettings or xfconf-query
//   - All test data should be defined inline, not in external files
//   - Each test should be completely isolated with no shared state
package testutil
