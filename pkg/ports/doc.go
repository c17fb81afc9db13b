/*
Package ports defines the driven ports (interfaces) for the swup-gru engine.

These interfaces decouple the sequencing core from external implementations,
allowing the engine to work with various fetch transports, history surfaces,
document backends and page stores.

# Key Interfaces

  - Fetcher: Retrieves and parses destination documents.
  - History: Mirrors the browser session-history surface the engine needs.
  - Document: The visible-document surface (container swaps, marker classes).
  - PageStore: Persists rendered pages between navigations.
*/
package ports
