// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package bidi

import (
	"bytes"
	"strings"
	"testing"

	"github.com/eaburns/pretty"
	"github.com/google/go-cmp/cmp"

	"github.com/wdamron/bidi/types"
)

func tvar(name string) *types.Var  { return &types.Var{Name: name} }
func evar(name string) *types.EVar { return &types.EVar{Name: name} }

func arr(a, b types.Type) *types.Arr {
	return &types.Arr{Arg: a, Return: b}
}

func all(v string, body types.Type) *types.All {
	return &types.All{Var: v, Body: body}
}

func sameContext(t *testing.T, want, got types.Context) {
	t.Helper()
	if diff := cmp.Diff(want.Members(), got.Members()); diff != "" {
		t.Fatalf("context mismatch (-want +got):\n%s\ngot: %s", diff, pretty.String(got.Members()))
	}
}

func TestUnitReflexive(t *testing.T) {
	st := NewCheckState()
	st2, err := Subtype(st, types.Unit{}, types.Unit{})
	if err != nil {
		t.Fatal(err)
	}
	sameContext(t, st.Context, st2.Context)
}

func TestReflexivityQuantifierFree(t *testing.T) {
	st := NewCheckState()
	st.Context = types.NewContext(
		&types.CtxVar{Name: "a"},
		&types.CtxVar{Name: "b"},
		&types.CtxEVar{Name: "e0"},
	)
	cases := []types.Type{
		types.Unit{},
		tvar("a"),
		evar("e0"),
		arr(tvar("a"), tvar("b")),
		arr(arr(tvar("a"), tvar("b")), arr(types.Unit{}, evar("e0"))),
	}
	for _, ty := range cases {
		st2, err := Subtype(st, ty, ty)
		if err != nil {
			t.Fatalf("%s <: itself: %v", types.TypeString(ty), err)
		}
		sameContext(t, st.Context, st2.Context)
	}
}

func TestRigidVariablesAreNominal(t *testing.T) {
	st := NewCheckState()
	st.Context = types.NewContext(&types.CtxVar{Name: "a"}, &types.CtxVar{Name: "b"})
	if _, err := Subtype(st, tvar("a"), tvar("b")); err == nil {
		t.Fatalf("distinct rigid variables must not be subtypes")
	}
}

func TestArrowVariance(t *testing.T) {
	st := NewCheckState()
	st.Context = types.NewContext(&types.CtxVar{Name: "a"}, &types.CtxVar{Name: "b"})

	same := arr(tvar("a"), tvar("b"))
	st2, err := Subtype(st, same, arr(tvar("a"), tvar("b")))
	if err != nil {
		t.Fatal(err)
	}
	sameContext(t, st.Context, st2.Context)

	// Swapping domain and codomain on one side must fail in both positions.
	if _, err := Subtype(st, arr(tvar("b"), tvar("b")), arr(tvar("a"), tvar("b"))); err == nil {
		t.Fatalf("contravariant argument mismatch must fail")
	}
	if _, err := Subtype(st, arr(tvar("a"), tvar("a")), arr(tvar("a"), tvar("b"))); err == nil {
		t.Fatalf("covariant return mismatch must fail")
	}
}

func TestUnitNotArrow(t *testing.T) {
	st := NewCheckState()
	if _, err := Subtype(st, types.Unit{}, arr(types.Unit{}, types.Unit{})); err == nil {
		t.Fatalf("no rule relates unit to an arrow")
	}
	if _, err := Subtype(st, arr(types.Unit{}, types.Unit{}), types.Unit{}); err == nil {
		t.Fatalf("no rule relates an arrow to unit")
	}
}

// Under [a], forall b. b -> b is a subtype of a -> a by
// instantiating b's existential to a, and all scaffolding introduced for
// the instantiation is truncated away afterward.
func TestInstantiateQuantifierLeft(t *testing.T) {
	st := NewCheckState()
	st.Context = types.NewContext(&types.CtxVar{Name: "a"})

	id := all("b", arr(tvar("b"), tvar("b")))
	st2, err := Subtype(st, id, arr(tvar("a"), tvar("a")))
	if err != nil {
		t.Fatal(err)
	}
	sameContext(t, types.NewContext(&types.CtxVar{Name: "a"}), st2.Context)
}

func TestQuantifierReflexive(t *testing.T) {
	st := NewCheckState()
	id := all("b", arr(tvar("b"), tvar("b")))
	st2, err := Subtype(st, id, all("c", arr(tvar("c"), tvar("c"))))
	if err != nil {
		t.Fatal(err)
	}
	sameContext(t, st.Context, st2.Context)
}

func TestQuantifierNotGeneralizable(t *testing.T) {
	st := NewCheckState()
	st.Context = types.NewContext(&types.CtxVar{Name: "a"})
	// a -> a is not polymorphic in its argument: checking it against
	// forall b. b -> b pits a fresh rigid variable against a.
	if _, err := Subtype(st, arr(tvar("a"), tvar("a")), all("b", arr(tvar("b"), tvar("b")))); err == nil {
		t.Fatalf("a monomorphic arrow must not check against a quantifier")
	}
}

func TestOccursCheck(t *testing.T) {
	st := NewCheckState()
	alpha := st.FreshEVar()
	st.Context = types.NewContext(&types.CtxEVar{Name: alpha})

	if _, err := Subtype(st, evar(alpha), arr(evar(alpha), types.Unit{})); err == nil {
		t.Fatalf("occurs check must reject a self-referential solution")
	}
	if _, err := Subtype(st, arr(evar(alpha), types.Unit{}), evar(alpha)); err == nil {
		t.Fatalf("occurs check must reject a self-referential solution from the right")
	}
	// The reflexive existential case is not an occurs violation.
	st2, err := Subtype(st, evar(alpha), evar(alpha))
	if err != nil {
		t.Fatal(err)
	}
	sameContext(t, st.Context, st2.Context)
}

func TestPredicativity(t *testing.T) {
	st := NewCheckState()
	alpha := st.FreshEVar()
	st.Context = types.NewContext(&types.CtxEVar{Name: alpha})

	poly := all("b", arr(tvar("b"), tvar("b")))
	// The quantifier rule introduces a rigid variable the existential may
	// not capture, so this judgment fails rather than solving alpha to a
	// polytype.
	if _, err := Subtype(st, evar(alpha), poly); err == nil {
		t.Fatalf("an existential must not be solved to a quantified type")
	}

	// The other direction holds via instantiation, and the solution
	// recorded for alpha is a monotype.
	st2, err := Subtype(st, poly, evar(alpha))
	if err != nil {
		t.Fatal(err)
	}
	sol, ok := st2.Context.Solution(alpha)
	if !ok {
		t.Fatalf("alpha must be solved: %s", types.ContextString(st2.Context))
	}
	if !types.IsMono(sol) {
		t.Fatalf("solution must be a monotype: %s", types.TypeString(sol))
	}
}

func TestSolutionsPropagateAcrossArrow(t *testing.T) {
	st := NewCheckState()
	alpha := st.FreshEVar()
	st.Context = types.NewContext(&types.CtxEVar{Name: alpha})

	// Checking the argument solves alpha; the return check must see the
	// solution.
	st2, err := Subtype(st, arr(evar(alpha), evar(alpha)), arr(types.Unit{}, types.Unit{}))
	if err != nil {
		t.Fatal(err)
	}
	if sol, ok := st2.Context.Solution(alpha); !ok || !types.Equal(sol, types.Unit{}) {
		t.Fatalf("alpha must be solved to unit: %s", types.ContextString(st2.Context))
	}
}

func TestApplyIdempotentAfterCheck(t *testing.T) {
	st := NewCheckState()
	alpha := st.FreshEVar()
	beta := st.FreshEVar()
	st.Context = types.NewContext(&types.CtxEVar{Name: alpha}, &types.CtxEVar{Name: beta})

	a := arr(evar(alpha), evar(beta))
	b := arr(types.Unit{}, types.Unit{})
	st2, err := Subtype(st, a, b)
	if err != nil {
		t.Fatal(err)
	}
	for _, ty := range []types.Type{a, b} {
		once := st2.Context.Apply(ty)
		twice := st2.Context.Apply(once)
		if !types.Equal(once, twice) {
			t.Fatalf("apply must be stable after a successful check: %s vs %s",
				types.TypeString(once), types.TypeString(twice))
		}
	}
}

func TestFailureLeavesStateUntouched(t *testing.T) {
	st := NewCheckState()
	alpha := st.FreshEVar()
	st.Context = types.NewContext(&types.CtxEVar{Name: alpha})
	before := st.Context

	// The argument check solves alpha to unit, then the return check fails;
	// none of it may be visible through the original state.
	if _, err := Subtype(st, arr(evar(alpha), evar(alpha)), arr(types.Unit{}, arr(types.Unit{}, types.Unit{}))); err == nil {
		t.Fatalf("return mismatch must fail")
	}
	sameContext(t, before, st.Context)
	if _, ok := st.Context.Solution(alpha); ok {
		t.Fatalf("failed branch solutions must not leak")
	}
}

func TestFreshNamesDistinct(t *testing.T) {
	st := NewCheckState()
	seen := make(map[string]bool)
	for i := 0; i < 4; i++ {
		for _, name := range []string{st.FreshEVar(), st.FreshVar()} {
			if seen[name] {
				t.Fatalf("fresh name %s reissued", name)
			}
			seen[name] = true
		}
	}
}

func TestSessionCountersIndependent(t *testing.T) {
	a := NewCheckState()
	b := NewCheckState()
	if a.FreshEVar() != b.FreshEVar() {
		t.Fatalf("independent sessions must not share a counter")
	}
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	st := NewCheckState()
	st.Context = types.NewContext(&types.CtxVar{Name: "a"})
	st.EnableTrace(&buf)

	if _, err := Subtype(st, all("b", arr(tvar("b"), tvar("b"))), arr(tvar("a"), tvar("a"))); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "<:") {
		t.Fatalf("trace output missing rule applications:\n%s", out)
	}
	if !strings.Contains(out, "---") {
		t.Fatalf("trace output missing indentation:\n%s", out)
	}
	t.Logf("trace:\n%s", out)
}
