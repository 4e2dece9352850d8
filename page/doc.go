// Package page holds the per-page state machines that sit between the
// content source and the views.
//
// A Loader models "this page needs N resources before it can render": it
// fetches them concurrently and ends Ready with every result or Failed with
// none. A ContactForm models the contact form's Editing, Submitting and
// Submitted lifecycle, including the timed reset after a confirmation.
package page
