// Package testutil provides shared helpers for integration tests.
//
// The helpers assert the structural guarantees every assignment must satisfy
// regardless of strategy: complete partition coverage without duplicates, and
// threads that belong to the consumer they are filed under.
package testutil
