// Package watch re-runs a locale check whenever translation files change.
//
// The Watcher listens on one directory with fsnotify, debounces bursts of events on
// files with the watched extension, and then calls Check. Since Check usually
// reconciles the files (and may rewrite them), events arriving during the quiet
// period after a run are dropped so the watcher does not trigger itself.
package watch
