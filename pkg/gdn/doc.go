// Package gdn provides a small client for the Macrometa GDN (C8) REST API.
//
// A Configuration binds a base URL, an API key and a fabric. From it the
// caller builds one handle per resource family: KeyValueClient for
// key-value collections, CollectionsClient for collection management and
// DocumentClient for document writes. Handles are immutable and safe for
// concurrent use. Every call is a single HTTP request; nothing is retried.
package gdn
