// Package ui implements marquee's Bubble Tea front end.
//
// The model reads fetch state from a state.Store and renders exactly one of
// four bodies: a spinner with "Loading...", the error message, "No movies
// found.", or the movie cards in a scrollable viewport. Store changes arrive
// through a subscription, so fetches started by the background refresher
// show up without a key press.
//
// Pressing r calls Fetcher.Start inside Update so Loading is on screen before
// the request leaves; Resolve runs in a tea.Cmd. The add form is a Modal; on
// ctrl+s it hands the record to the Submitter and the outcome is shown in the
// footer. Adding never refreshes the list.
//
// Theme and opening-text visibility are saved to the prefs file whenever
// they change.
package ui
