// Package exec runs external commands and captures their output.
//
// It backs the gh CLI transport. Settings passed to New are global defaults;
// the fluent With* methods set local overrides that apply to the next Run only.
//
//	gh := exec.NewWrapper(exec.New(exec.WithInheritEnv()), "gh")
//	result, err := gh.Clone().
//	    WithContext(ctx).
//	    WithStdin(bytes.NewReader(payload)).
//	    Run("api", "repos/owner/repo/issues", "--method", "POST", "--input", "-")
//
// Run returns a Result even when the command fails, so callers can inspect the
// output of a non-zero exit. The error is an *ExecError.
package exec
