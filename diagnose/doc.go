// Package diagnose explains why locating an executable by name via PATH
// failed or might behave unexpectedly.
//
// A Which describes the lookup to diagnose: the program name, the PATH value
// to search, the working directory used to resolve relative PATH entries, and
// how many spelling suggestions to offer. Diagnose walks the PATH list in
// order, classifies every directory entry, classifies every file matching the
// program name, and gathers close-but-not-exact spellings when nothing
// matched. The result is a single immutable Report.
//
// The engine only reads filesystem metadata; it never executes or modifies
// the program being searched for. Executability is decided by asking the OS
// ("would an exec of this path succeed, permission-wise") rather than by
// inspecting mode bits, so ancestor-directory permissions and noexec mounts
// are accounted for.
//
// # Example
//
//	report, err := diagnose.New("bundle").Diagnose()
//	if err != nil {
//	    return err
//	}
//	diagnose.RenderText(report)
//
// All anomalies a user can cause (blank program name, whitespace in the name,
// empty PATH, missing PATH segments, non-executable matches, broken symlinks)
// are data in the Report, not errors. Diagnose returns an error only when the
// filesystem itself misbehaves in a way the report cannot describe.
package diagnose
