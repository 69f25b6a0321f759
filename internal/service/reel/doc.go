// Package reel implements Instagram reel management for the social wall
// carousel.
//
// Embed markup can be supplied by hand or derived from a well-formed reel URL
// (the /reel/<id> path form). Hand-supplied markup is run through an
// allow-list sanitizer restricted to the shapes Instagram's embed snippets
// actually use before it is stored.
package reel
