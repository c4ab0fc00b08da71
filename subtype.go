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

// Subtype reports whether a is a subtype of b under st's context. On
// success the returned state carries every existential solution discovered
// along the way; on failure the input state is unaffected and a judgment
// error is returned.
//
// Both a and b must be well formed under st.Context on entry; this is the
// caller's obligation and is not re-checked.
func Subtype(st CheckState, a, b types.Type) (CheckState, error) {
	defer st.tr("%s <: %s  %s", types.TypeString(a), types.TypeString(b), types.ContextString(st.Context))()

	// <:Unit, <:Var, <:Exvar
	switch a := a.(type) {
	case types.Unit:
		if _, ok := b.(types.Unit); ok {
			return st, nil
		}
	case *types.Var:
		if b, ok := b.(*types.Var); ok && a.Name == b.Name {
			return st, nil
		}
	case *types.EVar:
		if b, ok := b.(*types.EVar); ok && a.Name == b.Name {
			return st, nil
		}
	}

	// <:-->
	if a, ok := a.(*types.Arr); ok {
		if b, ok := b.(*types.Arr); ok {
			return subtypeArr(st, a, b)
		}
	}

	// <:ForallR
	if b, ok := b.(*types.All); ok {
		return subtypeAllRight(st, a, b)
	}

	// <:ForallL
	if a, ok := a.(*types.All); ok {
		return subtypeAllLeft(st, a, b)
	}

	// <:InstantiateL
	if a, ok := a.(*types.EVar); ok {
		if types.Occurs(a.Name, b) {
			return st, errors.New("Occurs check failed: existential " + a.Name + " occurs in " + types.TypeString(b))
		}
		return instantiateLeft(st, a.Name, b)
	}

	// <:InstantiateR
	if b, ok := b.(*types.EVar); ok {
		if types.Occurs(b.Name, a) {
			return st, errors.New("Occurs check failed: existential " + b.Name + " occurs in " + types.TypeString(a))
		}
		return instantiateRight(st, a, b.Name)
	}

	return st, errors.New("Not a subtype: " + types.TypeString(a) + " <: " + types.TypeString(b))
}

// <:--> is contravariant in the argument and covariant in the return.
// Solving during the argument check may resolve existentials free in the
// returns, so the learned context is applied to both before the second
// check.
func subtypeArr(st CheckState, a, b *types.Arr) (CheckState, error) {
	st2, err := Subtype(st, b.Arg, a.Arg)
	if err != nil {
		return st, err
	}
	ra := st2.Context.Apply(a.Return)
	rb := st2.Context.Apply(b.Return)
	return Subtype(st2, ra, rb)
}

// <:ForallR checks against the quantifier body under a fresh rigid
// variable, then truncates the context back through that variable's
// declaration, keeping only what was learned to its left.
func subtypeAllRight(st CheckState, a types.Type, b *types.All) (CheckState, error) {
	fresh := st.FreshVar()
	decl := &types.CtxVar{Name: fresh}
	st2 := st
	st2.Context = st.Context.Add(decl)
	body := types.Subst(b.Body, b.Var, &types.Var{Name: fresh})
	st2, err := Subtype(st2, a, body)
	if err != nil {
		return st, err
	}
	left, _, ok := st2.Context.Hole(decl)
	if !ok {
		panic("rigid variable " + fresh + " vanished from the context")
	}
	st2.Context = left
	return st2, nil
}

// <:ForallL instantiates the bound variable with a fresh existential
// introduced behind a marker, then truncates back through the marker.
func subtypeAllLeft(st CheckState, a *types.All, b types.Type) (CheckState, error) {
	fresh := st.FreshEVar()
	marker := &types.CtxMarker{Name: fresh}
	st2 := st
	st2.Context = st.Context.Add(marker).Add(&types.CtxEVar{Name: fresh})
	body := types.Subst(a.Body, a.Var, &types.EVar{Name: fresh})
	st2, err := Subtype(st2, body, b)
	if err != nil {
		return st, err
	}
	left, _, ok := st2.Context.Hole(marker)
	if !ok {
		panic("marker " + fresh + " vanished from the context")
	}
	st2.Context = left
	return st2, nil
}
