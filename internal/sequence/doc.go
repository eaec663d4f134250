// Package sequence generates the opening terms of the Fibonacci sequence and
// validates the term count typed by the user.
//
// Terms are arbitrary-precision integers, so there is no upper bound on their
// magnitude; the only practical limit on a sequence is the memory needed to
// hold it.
package sequence
