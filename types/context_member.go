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

// ContextMember is the base interface for entries of the ordered context.
type ContextMember interface {
	MemberName() string
	// MemberType returns the type carried by an assumption or solution
	// entry, or nil for other entries.
	MemberType() Type
}

var (
	_ ContextMember = (*CtxVar)(nil)
	_ ContextMember = (*CtxAssump)(nil)
	_ ContextMember = (*CtxEVar)(nil)
	_ ContextMember = (*CtxSolved)(nil)
	_ ContextMember = (*CtxMarker)(nil)
)

// Rigid type-variable declaration: `a`
//
// Declares the variable in scope from this entry rightward.
type CtxVar struct {
	Name string
}

// Term-variable typing assumption: `x : A`
type CtxAssump struct {
	Name string
	Type Type
}

// Unsolved existential declaration: `'a`
type CtxEVar struct {
	Name string
}

// Solved existential: `'a = τ`
//
// Logically replaces the earlier unsolved declaration at the same position.
type CtxSolved struct {
	Name string
	Type Type
}

// Scope marker: `>'a`
//
// A fence paired with the introduction of an existential, delimiting how far
// a later truncation reaches.
type CtxMarker struct {
	Name string
}

func (*CtxVar) MemberName() string    { return "Var" }
func (*CtxAssump) MemberName() string { return "Assump" }
func (*CtxEVar) MemberName() string   { return "EVar" }
func (*CtxSolved) MemberName() string { return "Solved" }
func (*CtxMarker) MemberName() string { return "Marker" }

func (*CtxVar) MemberType() Type      { return nil }
func (m *CtxAssump) MemberType() Type { return m.Type }
func (*CtxEVar) MemberType() Type     { return nil }
func (m *CtxSolved) MemberType() Type { return m.Type }
func (*CtxMarker) MemberType() Type   { return nil }

// MemberEqual reports whether a and b are structurally equal context
// members.
func MemberEqual(a, b ContextMember) bool {
	switch a := a.(type) {
	case *CtxVar:
		b, ok := b.(*CtxVar)
		return ok && a.Name == b.Name
	case *CtxAssump:
		b, ok := b.(*CtxAssump)
		return ok && a.Name == b.Name && Equal(a.Type, b.Type)
	case *CtxEVar:
		b, ok := b.(*CtxEVar)
		return ok && a.Name == b.Name
	case *CtxSolved:
		b, ok := b.(*CtxSolved)
		return ok && a.Name == b.Name && Equal(a.Type, b.Type)
	case *CtxMarker:
		b, ok := b.(*CtxMarker)
		return ok && a.Name == b.Name
	}
	panic("unexpected context member " + a.MemberName())
}
