// Package version reports which lazycollect build is linked into the running
// binary. Configuration and telemetry use it as the default service version.
package version
