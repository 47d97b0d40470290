package serror

// Assert panics with an invalid-argument error when ok is false. Reserved for
// programming-contract violations; gameplay variance must never trip one.
func Assert(ok bool, format string, args ...interface{}) {
	if !ok {
		panic(New(KindInvalidArgument, format, args...))
	}
}
