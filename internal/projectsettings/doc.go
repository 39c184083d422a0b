// Package projectsettings persists the Rider solution name override in
// <project>/ProjectSettings/Rider.json.
//
// The file holds a single record, {"version":1,"solutionName":"..."}, in the
// compact shape the editor writes. A missing file means no override. Saving
// replaces the whole record; there is no merge and no delete. A malformed file
// is logged as a warning and treated as empty so the settings panel stays
// usable.
//
// Writes go through a temp file and rename by default. An optional advisory
// lock (Rider.json.lock) serializes concurrent writers from several processes;
// without it the last writer wins.
package projectsettings
