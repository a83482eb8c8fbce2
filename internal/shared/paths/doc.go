// Package paths provides the default file layout shared by the sync job
// and the dashboard server.
//
// # Layout
//
//	dashboard/public/data.json   (canonical dataset, read by the dashboard)
//	error-screenshot.png         (last failure screenshot)
//
// Relative paths are resolved against the -root flag of both commands, or
// the working directory when it is not given.
//
// # Usage
//
//	out := paths.Resolve(root, cfg.Output.DataPath)
//	if err := paths.EnsureParent(out); err != nil {
//	    return err
//	}
package paths
