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
	"errors"

	"github.com/wdamron/bidi/types"
)

// instantiateLeft solves the existential alpha such that 'alpha <: b.
// alpha must be declared and unsolved in st's context and must not occur
// in b.
func instantiateLeft(st CheckState, alpha string, b types.Type) (CheckState, error) {
	defer st.tr("'%s :=< %s  %s", alpha, types.TypeString(b), types.ContextString(st.Context))()

	left, _, ok := st.Context.Hole(&types.CtxEVar{Name: alpha})
	if !ok {
		return st, errors.New("Existential " + alpha + " is not unsolved in the context")
	}

	// InstLSolve: a monotype well formed left of alpha's declaration is the
	// solution directly.
	if types.IsMono(b) && left.WellFormed(b) {
		return solve(st, alpha, b), nil
	}

	switch b := b.(type) {
	case *types.EVar:
		// InstLReach: beta is declared to the right of alpha, so solve beta
		// to alpha instead.
		return reach(st, alpha, b.Name)

	case *types.Arr:
		// InstLArr: articulate alpha into an arrow over two fresh
		// existentials, then relate the pieces with the usual variance.
		st2, a1, a2 := articulate(st, alpha)
		st2, err := instantiateRight(st2, b.Arg, a1)
		if err != nil {
			return st, err
		}
		st2, err = instantiateLeft(st2, a2, st2.Context.Apply(b.Return))
		if err != nil {
			return st, err
		}
		return st2, nil

	case *types.All:
		// InstLAllR: go under the quantifier with a fresh rigid variable;
		// the quantified type itself is never a solution.
		fresh := st.FreshVar()
		decl := &types.CtxVar{Name: fresh}
		st2 := st
		st2.Context = st.Context.Add(decl)
		st2, err := instantiateLeft(st2, alpha, types.Subst(b.Body, b.Var, &types.Var{Name: fresh}))
		if err != nil {
			return st, err
		}
		l, _, ok := st2.Context.Hole(decl)
		if !ok {
			panic("rigid variable " + fresh + " vanished from the context")
		}
		st2.Context = l
		return st2, nil
	}

	return st, errors.New("Cannot instantiate existential " + alpha + " to " + types.TypeString(b))
}

// instantiateRight solves the existential alpha such that a <: 'alpha.
// alpha must be declared and unsolved in st's context and must not occur
// in a.
func instantiateRight(st CheckState, a types.Type, alpha string) (CheckState, error) {
	defer st.tr("%s =:< '%s  %s", types.TypeString(a), alpha, types.ContextString(st.Context))()

	left, _, ok := st.Context.Hole(&types.CtxEVar{Name: alpha})
	if !ok {
		return st, errors.New("Existential " + alpha + " is not unsolved in the context")
	}

	// InstRSolve
	if types.IsMono(a) && left.WellFormed(a) {
		return solve(st, alpha, a), nil
	}

	switch a := a.(type) {
	case *types.EVar:
		// InstRReach
		return reach(st, alpha, a.Name)

	case *types.Arr:
		// InstRArr
		st2, a1, a2 := articulate(st, alpha)
		st2, err := instantiateLeft(st2, a1, a.Arg)
		if err != nil {
			return st, err
		}
		st2, err = instantiateRight(st2, st2.Context.Apply(a.Return), a2)
		if err != nil {
			return st, err
		}
		return st2, nil

	case *types.All:
		// InstRAllL: instantiate the quantifier with a fresh existential
		// behind a marker, then truncate back through the marker.
		fresh := st.FreshEVar()
		marker := &types.CtxMarker{Name: fresh}
		st2 := st
		st2.Context = st.Context.Add(marker).Add(&types.CtxEVar{Name: fresh})
		st2, err := instantiateRight(st2, types.Subst(a.Body, a.Var, &types.EVar{Name: fresh}), alpha)
		if err != nil {
			return st, err
		}
		l, _, ok := st2.Context.Hole(marker)
		if !ok {
			panic("marker " + fresh + " vanished from the context")
		}
		st2.Context = l
		return st2, nil
	}

	return st, errors.New("Cannot instantiate existential " + alpha + " to " + types.TypeString(a))
}

// solve replaces alpha's unsolved declaration with the solution tau at the
// same position. The declaration was located by the caller, so its absence
// here is fatal.
func solve(st CheckState, alpha string, tau types.Type) CheckState {
	ctx, ok := st.Context.Solve(alpha, tau)
	if !ok {
		panic("existential " + alpha + " vanished from the context")
	}
	st.Context = ctx
	return st
}

// reach relates two distinct unsolved existentials by solving whichever was
// declared later to the earlier one, preserving the ordering invariant.
func reach(st CheckState, alpha, beta string) (CheckState, error) {
	aDecl := &types.CtxEVar{Name: alpha}
	bDecl := &types.CtxEVar{Name: beta}
	if left, mid, right, ok := st.Context.Hole2(aDecl, bDecl); ok {
		st.Context = left.
			Add(aDecl).
			Concat(mid).
			Add(&types.CtxSolved{Name: beta, Type: &types.EVar{Name: alpha}}).
			Concat(right)
		return st, nil
	}
	if left, mid, right, ok := st.Context.Hole2(bDecl, aDecl); ok {
		st.Context = left.
			Add(bDecl).
			Concat(mid).
			Add(&types.CtxSolved{Name: alpha, Type: &types.EVar{Name: beta}}).
			Concat(right)
		return st, nil
	}
	return st, errors.New("Existentials " + alpha + " and " + beta + " are not both unsolved in the context")
}

// articulate replaces the unsolved existential alpha with two fresh
// existentials for an arrow's argument and return plus the arrow solution,
// all at alpha's original position.
func articulate(st CheckState, alpha string) (CheckState, string, string) {
	a1 := st.FreshEVar()
	a2 := st.FreshEVar()
	left, right, ok := st.Context.Hole(&types.CtxEVar{Name: alpha})
	if !ok {
		panic("existential " + alpha + " vanished from the context")
	}
	arrow := &types.Arr{Arg: &types.EVar{Name: a1}, Return: &types.EVar{Name: a2}}
	st.Context = left.
		Add(&types.CtxEVar{Name: a1}).
		Add(&types.CtxEVar{Name: a2}).
		Add(&types.CtxSolved{Name: alpha, Type: arrow}).
		Concat(right)
	return st, a1, a2
}
