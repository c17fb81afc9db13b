/*
Package hooks implements the extensibility mechanism of the engine: named
hook points with ordered handler registration and a sequential trigger
pipeline.

Handlers for the same hook run in ascending priority order, ties broken by
registration order, strictly one at a time. A trigger may carry a default
handler: the built-in behavior for that hook. The default runs after all
registered handlers, unless a handler registered with Replace supplants it.
Representing "override the default" as a registration flag keeps the common
case (observe) and the override case (replace) symmetric under one API.

A handler failure aborts the remaining handlers for that trigger and
propagates to the caller; failures are never swallowed inside the pipeline.
*/
package hooks
