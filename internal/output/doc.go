// Package output writes the local run report in text or JSON form.
package output
