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

package types

import (
	"github.com/benbjohnson/immutable"
)

var emptyMembers = immutable.NewList()

// Context is the ordered ledger of scope declarations, typing assumptions
// and existential solutions threaded through the subtyping algorithm.
//
// Entries may only reference names declared by entries strictly to their
// left, and the sequence is never reordered, only extended on the right or
// truncated. The backing list is persistent, so extending or truncating a
// context never disturbs other holders of the original value.
type Context struct {
	l *immutable.List
}

// NewContext returns a context holding the given members in order.
func NewContext(members ...ContextMember) Context {
	if len(members) == 0 {
		return Context{emptyMembers}
	}
	b := immutable.NewListBuilder(emptyMembers)
	for _, m := range members {
		b.Append(m)
	}
	return Context{b.List()}
}

func (c Context) list() *immutable.List {
	if c.l == nil {
		return emptyMembers
	}
	return c.l
}

func (c Context) Len() int                    { return c.list().Len() }
func (c Context) Get(i int) ContextMember     { return c.list().Get(i).(ContextMember) }
func (c Context) Add(m ContextMember) Context { return Context{c.list().Append(m)} }

// If f returns false, iteration will be stopped.
func (c Context) Range(f func(int, ContextMember) bool) {
	iter := c.list().Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if !f(i, v.(ContextMember)) {
			return
		}
	}
}

// Members returns the entries of c as a slice, in order.
func (c Context) Members() []ContextMember {
	members := make([]ContextMember, 0, c.Len())
	c.Range(func(_ int, m ContextMember) bool {
		members = append(members, m)
		return true
	})
	return members
}

func (c Context) indexOf(m ContextMember) int {
	found := -1
	c.Range(func(i int, e ContextMember) bool {
		if MemberEqual(e, m) {
			found = i
			return false
		}
		return true
	})
	return found
}

// Elem reports whether m is a member of c.
func (c Context) Elem(m ContextMember) bool { return c.indexOf(m) >= 0 }

// Filter returns the members of c satisfying pred, in order.
func (c Context) Filter(pred func(ContextMember) bool) []ContextMember {
	var members []ContextMember
	c.Range(func(_ int, m ContextMember) bool {
		if pred(m) {
			members = append(members, m)
		}
		return true
	})
	return members
}

// Assumption returns the assumed type of the term variable x. A context
// holding more than one assumption for the same name has a broken
// uniqueness invariant, which is fatal.
func (c Context) Assumption(x string) (Type, bool) {
	matches := c.Filter(func(m ContextMember) bool {
		a, ok := m.(*CtxAssump)
		return ok && a.Name == x
	})
	switch len(matches) {
	case 0:
		return nil, false
	case 1:
		return matches[0].MemberType(), true
	}
	panic("multiple assumptions for term variable " + x)
}

// Solution returns the solved type of the existential name. A context
// holding more than one solution for the same name has a broken uniqueness
// invariant, which is fatal.
func (c Context) Solution(name string) (Type, bool) {
	matches := c.Filter(func(m ContextMember) bool {
		s, ok := m.(*CtxSolved)
		return ok && s.Name == name
	})
	switch len(matches) {
	case 0:
		return nil, false
	case 1:
		return matches[0].MemberType(), true
	}
	panic("multiple solutions for existential " + name)
}

// WellFormed reports whether t is well formed under c: every rigid variable
// is declared, and every existential is declared or solved. The extension
// for a quantifier body is local to the check.
func (c Context) WellFormed(t Type) bool {
	switch t := t.(type) {
	case Unit:
		return true
	case *Var:
		return c.Elem(&CtxVar{Name: t.Name})
	case *EVar:
		if c.Elem(&CtxEVar{Name: t.Name}) {
			return true
		}
		_, solved := c.Solution(t.Name)
		return solved
	case *Arr:
		return c.WellFormed(t.Arg) && c.WellFormed(t.Return)
	case *All:
		return c.Add(&CtxVar{Name: t.Var}).WellFormed(t.Body)
	}
	panic("unexpected type " + t.TypeName())
}

// Apply substitutes every solved existential in t with its solution,
// exhaustively. A solution may only mention existentials declared to its
// left, so substitution chains are acyclic and the recursion terminates.
func (c Context) Apply(t Type) Type {
	switch t := t.(type) {
	case Unit:
		return t
	case *Var:
		return t
	case *EVar:
		if tau, ok := c.Solution(t.Name); ok {
			return c.Apply(tau)
		}
		return t
	case *Arr:
		return &Arr{Arg: c.Apply(t.Arg), Return: c.Apply(t.Return)}
	case *All:
		return &All{Var: t.Var, Body: c.Apply(t.Body)}
	}
	panic("unexpected type " + t.TypeName())
}

// SplitAt splits c at the first occurrence of m. The prefix holds
// everything strictly left of m; the remainder begins at m inclusive.
func (c Context) SplitAt(m ContextMember) (prefix, remainder Context, ok bool) {
	i := c.indexOf(m)
	if i < 0 {
		return Context{}, Context{}, false
	}
	l := c.list()
	return Context{l.Slice(0, i)}, Context{l.Slice(i, l.Len())}, true
}

// Hole excises the first occurrence of m, exposing the segments to its left
// and right.
func (c Context) Hole(m ContextMember) (left, right Context, ok bool) {
	i := c.indexOf(m)
	if i < 0 {
		return Context{}, Context{}, false
	}
	l := c.list()
	return Context{l.Slice(0, i)}, Context{l.Slice(i+1, l.Len())}, true
}

// Hole2 excises m1 and m2, where m1 must be positioned left of m2, exposing
// the three segments around them.
func (c Context) Hole2(m1, m2 ContextMember) (left, mid, right Context, ok bool) {
	left, rest, ok := c.Hole(m1)
	if !ok {
		return Context{}, Context{}, Context{}, false
	}
	mid, right, ok = rest.Hole(m2)
	if !ok {
		return Context{}, Context{}, Context{}, false
	}
	return left, mid, right, true
}

// Concat appends d's members after c's.
func (c Context) Concat(d Context) Context {
	if d.Len() == 0 {
		return c
	}
	b := immutable.NewListBuilder(c.list())
	d.Range(func(_ int, m ContextMember) bool {
		b.Append(m)
		return true
	})
	return Context{b.List()}
}

// Solve replaces the unsolved declaration of the existential name with a
// solution at the same position. Reports false if the declaration is
// absent.
func (c Context) Solve(name string, tau Type) (Context, bool) {
	left, right, ok := c.Hole(&CtxEVar{Name: name})
	if !ok {
		return Context{}, false
	}
	return left.Add(&CtxSolved{Name: name, Type: tau}).Concat(right), true
}
