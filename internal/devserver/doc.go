// Package devserver is a small in-memory backend for exercising marquee
// without a third-party service.
//
// Routes:
//
//	GET  /api/films/   {"count":N,"results":[{"episode_id":..,"title":..,"opening_crawl":..,"release_date":..}]}
//	GET  /movies.json  {"<key>":{"title":..,"openingText":..,"releaseDate":..}} or null when empty
//	POST /movies.json  stores the body under a new KSUID key, replies {"name":"<key>"}
//	GET  /healthz
//
// Keys are KSUIDs from a single sequence, so sorting them reproduces
// insertion order. Nothing is persisted.
package devserver
