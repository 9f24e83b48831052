// Package errors provides structured, actionable error messages for commonui.
//
// Every error carries a code from a fixed registry:
//   - E100-E109: variant errors (unknown type, unsupported type/mode pair)
//   - E110-E119: configuration errors
//   - E120-E129: gallery export errors
//
// # Usage
//
//	err := errors.New(errors.CodeUnsupportedVariant).
//	    WithDetailf("no style row for %q", key)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E101: Unsupported button variant
//	//
//	//   no style row for "PrimaryColoredBackground"
//	//
//	//   Hint: Run `commonui variants` to list every supported type and
//	//   background mode pair.
//
// Errors with the same code match under errors.Is, so a bare New(code) works
// as a sentinel.
package errors
