//go:build go1.18
// +build go1.18

package splitexpr_test

import (
	"testing"

	"splitexpr"
)

func FuzzEval(f *testing.F) {
	f.Add("a<-5+a")
	f.Add("1.5%0.25")
	f.Add("2^(0-1)")
	f.Fuzz(func(t *testing.T, s string) {
		splitexpr.EvalString(s)
	})
}
