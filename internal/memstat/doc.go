// Package memstat reads memory usage of the running process or the host.
//
// Two sources are available: "process" reports the resident set size of the
// current process from /proc, "system" reports host memory in use (total minus
// free). Both report kilobytes.
package memstat
