// Package post implements blog post authoring and listing.
//
// Posts are created, edited, and deleted from the admin newsletter screen,
// read by the public list/detail pages, and consumed by the dispatch
// function. Listing supports an exact category filter, a case-insensitive
// title substring filter, and offset pagination with an exact total count.
package post
