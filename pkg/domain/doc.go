/*
Package domain contains the core domain models for the swup-gru engine.

It defines the fundamental entities of a page transition, such as Pages,
Visits, and the lifecycle hook events. This package is kept pure and free of
external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - Page: The parsed result of fetching a destination document (URL, title, blocks).
  - Visit: The transient state of a single navigation attempt.
  - HookName: The named extension points of the navigation lifecycle.
  - Event payloads: The structured arguments passed to hook handlers.
*/
package domain
