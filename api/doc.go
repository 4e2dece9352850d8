// Package api is the site's single point of contact with the content
// backend.
//
// Client issues JSON-over-HTTP requests against a configurable base URL and
// reports failures through two error types: RequestError when the backend
// answered with a non-2xx status, TransportError when no usable answer came
// back at all. It never retries, caches or deduplicates, and holds no
// mutable state, so one Client is shared by every page.
//
// Pages consume content through the Source interface. Client is the
// authoritative implementation; DemoSource serves bundled content when the
// site runs in offline/demo mode.
package api
