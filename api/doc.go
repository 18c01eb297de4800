// File: api/doc.go
// License: Apache-2.0

// Package api defines the public contracts of ringkit: the SPSC ring buffer
// facade implemented by every synchronization policy, the counter contract,
// and the arena allocation contract. Implementation packages depend on api;
// api depends on nothing.
package api
