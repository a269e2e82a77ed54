// Package magetasks provides organized build tasks for the pare project.
//
// This package contains the build, test, lint, and quality tasks used
// by the Magefile, grouped into logical namespaces.
package magetasks
