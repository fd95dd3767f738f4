// Package testutil provides helpers shared by the indent tests.
//
// Key components:
//   - Isolate: points the XDG base directories at temporary directories so
//     tests never read the user's config or write to the user's log
//   - CreateFile / CreateDir: real files in a temporary directory
//   - NewTestFS / MemFS: in-memory afero filesystems for document loading
package testutil
