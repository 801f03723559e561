// Package movies provides the HTTP client for the movie read and write
// endpoints and the transformation of read payloads into Movie records.
//
// # Payload shapes
//
// Two read shapes are understood:
//
//	{"results": [{"episode_id": 4, "title": "...", "opening_crawl": "...", "release_date": "1977-05-25"}]}
//
//	{"-Nabc": {"title": "...", "openingText": "...", "releaseDate": "..."}}
//
// FormatAuto inspects the top-level object and picks the first shape when a
// "results" member exists. Keyed payloads are ordered by key; a null body is
// an empty list.
//
// # Errors
//
// Any status outside 2xx yields a *StatusError whose message is
// "Something went wrong". Transport and decode failures are wrapped with
// "execute request:" and "decode response:" respectively.
//
// # Writes
//
// AddMovie posts the NewMovie as JSON with Content-Type application/json.
// The response is only inspected for an optional {"name": "<key>"}.
package movies
