// Package report builds the check-run output body and the local run summary.
package report
